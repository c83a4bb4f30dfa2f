package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"HospitalManagement/models"
	"HospitalManagement/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{FullName: "Ann Doe", Email: "ann@example.com", Password: "pw123456", Role: utils.RoleAdmin}
	assert.NoError(t, valid.Validate())

	noName := valid
	noName.FullName = ""
	assert.NoError(t, noName.Validate())

	tests := map[string]func(r *RegisterRequest){
		"email":    func(r *RegisterRequest) { r.Email = "not-an-email" },
		"password": func(r *RegisterRequest) { r.Password = strings.Repeat("a", 73) },
		"role":     func(r *RegisterRequest) { r.Role = "Nurse" },
	}
	for field, mutate := range tests {
		t.Run(field, func(t *testing.T) {
			req := valid
			mutate(&req)
			errs := utils.ValidationErrors(req.Validate())
			assert.Contains(t, errs, field)
		})
	}
}

func TestResetPasswordRequest_Validate(t *testing.T) {
	req := ResetPasswordRequest{Email: "ann@example.com", Code: "012345", NewPassword: "newpass123"}
	assert.NoError(t, req.Validate())

	req.Code = "12ab56"
	assert.Contains(t, utils.ValidationErrors(req.Validate()), "code")

	req.Code = "1234"
	assert.Contains(t, utils.ValidationErrors(req.Validate()), "code")
}

func TestPatientRequest_Validate(t *testing.T) {
	req := PatientRequest{FullName: "Pat Smith", DOB: NewDate(time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC))}
	assert.NoError(t, req.Validate())

	errs := utils.ValidationErrors(PatientRequest{Email: "nope"}.Validate())
	assert.Contains(t, errs, "fullName")
	assert.Contains(t, errs, "dob")
	assert.Contains(t, errs, "email")
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw     string
		want    time.Time
		wantErr bool
	}{
		{`"1990-01-02"`, time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC), false},
		{`"2024-03-01T09:30:00Z"`, time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC), false},
		{`null`, time.Time{}, false},
		{`"02/01/1990"`, time.Time{}, true},
		{`19900102`, time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.raw), &d)
			if tt.wantErr {
				var typeErr *json.UnmarshalTypeError
				assert.ErrorAs(t, err, &typeErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(d.Time))
		})
	}
}

func TestPatientRequest_DateOnlyDOB(t *testing.T) {
	var req PatientRequest
	require.NoError(t, json.Unmarshal([]byte(`{"fullName":"Pat Smith","dob":"1990-01-02"}`), &req))
	assert.NoError(t, req.Validate())
	assert.Equal(t, time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC), req.ToModel().DOB)
}

func TestPrescriptionItemRequest_Validate(t *testing.T) {
	req := PrescriptionItemRequest{MedicineID: 1, Dosage: "500mg", DurationDays: 5}
	assert.NoError(t, req.Validate())

	item := req.ToModel(9)
	assert.Equal(t, uint(9), item.PrescriptionID)
	assert.Equal(t, uint(1), item.MedicineID)

	req.DurationDays = 0
	assert.Contains(t, utils.ValidationErrors(req.Validate()), "durationDays")
}

func TestNameRequest(t *testing.T) {
	assert.Error(t, NameRequest{}.Validate())

	req := NameRequest{Name: "Cardiology"}
	assert.NoError(t, req.Validate())
	assert.Equal(t, "Cardiology", req.ToDepartment().Name)
	assert.Equal(t, "Cardiology", req.ToSpecialization().Name)
}

func TestMapSlice(t *testing.T) {
	empty := MapSlice([]models.Department(nil), NewDepartmentResponse)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)

	out := MapSlice([]models.Department{{ID: 1, Name: "Cardiology"}, {ID: 2, Name: "Oncology"}}, NewDepartmentResponse)
	assert.Equal(t, []NameResponse{{ID: 1, Name: "Cardiology"}, {ID: 2, Name: "Oncology"}}, out)
}

func TestNewDoctorViewResponse(t *testing.T) {
	resp := NewDoctorViewResponse(models.DoctorView{
		ID: 4, FullName: "Dr. Who", DepartmentID: 1, SpecializationID: 2,
		DepartmentName: "Cardiology", SpecializationName: "Surgery",
	})
	assert.Equal(t, "Cardiology", resp.DepartmentName)
	assert.Equal(t, "Surgery", resp.SpecializationName)
	assert.Equal(t, uint(4), resp.ID)
}
