package routes

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"HospitalManagement/config"
	"HospitalManagement/middlewares"
	"HospitalManagement/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Env:      "test",
		LogLevel: "error",
		JWT: config.JWTConfig{
			Key:           "0123456789abcdef0123456789abcdef",
			Issuer:        "HospitalManagement.Api",
			Audience:      "HospitalManagement.Client",
			ExpireMinutes: 60,
			Format:        config.TokenFormatJWT,
		},
		BcryptCost: bcrypt.MinCost,
	}
}

type testServer struct {
	router *gin.Engine
	mock   sqlmock.Sqlmock
	tokens utils.TokenMaker
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cfg := testConfig()
	log, _ := test.NewNullLogger()
	router, err := SetupRoutes(cfg, db, Dependencies{Logger: log})
	require.NoError(t, err)

	tokens, err := utils.NewTokenMaker(cfg.JWT.Format, utils.TokenSettings{
		Key:      cfg.JWT.Key,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      cfg.TokenLifetime(),
	})
	require.NoError(t, err)

	return &testServer{router: router, mock: mock, tokens: tokens}
}

func (s *testServer) token(t *testing.T, role string) string {
	t.Helper()
	token, _, err := s.tokens.CreateToken(1, "Test "+role, "test@example.com", role)
	require.NoError(t, err)
	return token
}

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t)

	s.mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
		WithArgs("ann@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	s.mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	rec, env := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"fullName": "Ann Doe",
		"email":    "ann@example.com",
		"password": "pw123456",
		"role":     utils.RoleAdmin,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, env.Success)
	assert.Equal(t, "/api/auth/users/1", rec.Header().Get("Location"))

	var user map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "ann@example.com", user["email"])
	assert.NotContains(t, user, "passwordHash")

	hash, err := utils.HashPassword("pw123456", bcrypt.MinCost)
	require.NoError(t, err)
	s.mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 LIMIT \$2`).
		WithArgs("ann@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "password_hash", "role", "created_at"}).
			AddRow(1, "Ann Doe", "ann@example.com", hash, utils.RoleAdmin, time.Now()))

	rec, env = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ann@example.com",
		"password": "pw123456",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var login struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	assert.Equal(t, utils.RoleAdmin, login.Role)

	rec, env = s.do(t, http.MethodGet, "/api/auth/me", login.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, utils.RoleAdmin, profile["role"])
	assert.Equal(t, float64(1), profile["id"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := newTestServer(t)

	s.mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	rec, env := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "ann@example.com",
		"password": "pw123456",
		"role":     utils.RoleDoctor,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, env.Success)
}

func TestRegister_ValidationFailed(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "not-an-email",
		"password": "",
		"role":     "Nurse",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, middlewares.MessageValidationFailed, env.Message)
	assert.Contains(t, env.Errors, "email")
	assert.Contains(t, env.Errors, "password")
	assert.Contains(t, env.Errors, "role")
}

func TestRegister_ShortPassword(t *testing.T) {
	s := newTestServer(t)

	s.mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
		WithArgs("bo@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	s.mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	rec, _ := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "bo@example.com",
		"password": "pw1",
		"role":     utils.RolePatient,
	})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestLogin_UnknownEmail(t *testing.T) {
	s := newTestServer(t)

	s.mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rec, env := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "pw123456",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password.", env.Message)
}

func TestRoleGates(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		role   string
		want   int
	}{
		{"no token on doctors", http.MethodGet, "/api/doctors", "", http.StatusUnauthorized},
		{"garbage token", http.MethodGet, "/api/patients", "garbage", http.StatusUnauthorized},
		{"patient creating doctor", http.MethodPost, "/api/doctors", utils.RolePatient, http.StatusForbidden},
		{"patient reading billing", http.MethodGet, "/api/billing", utils.RolePatient, http.StatusForbidden},
		{"patient reading clinical", http.MethodGet, "/api/clinical/medicines", utils.RolePatient, http.StatusForbidden},
		{"doctor listing users", http.MethodGet, "/api/auth/users", utils.RoleDoctor, http.StatusForbidden},
		{"anonymous profile", http.MethodGet, "/api/auth/me", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := tt.role
			if tt.role != "" && tt.role != "garbage" {
				token = s.token(t, tt.role)
			}
			rec, env := s.do(t, tt.method, tt.path, token, map[string]string{"fullName": "x"})
			assert.Equal(t, tt.want, rec.Code)
			assert.False(t, env.Success)
		})
	}
}

func TestListDoctors(t *testing.T) {
	s := newTestServer(t)

	s.mock.ExpectQuery(`FROM doctors AS d`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "department_id", "specialization_id", "department_name", "specialization_name"}).
			AddRow(1, "Dr. Grey", 1, 2, "Cardiology", "Surgery"))

	rec, env := s.do(t, http.MethodGet, "/api/doctors", s.token(t, utils.RoleDoctor), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var doctors []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &doctors))
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dr. Grey", doctors[0]["fullName"])
	assert.Equal(t, "Cardiology", doctors[0]["departmentName"])
}

func TestCreatePatient(t *testing.T) {
	s := newTestServer(t)

	s.mock.ExpectQuery(`INSERT INTO "patients"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	rec, env := s.do(t, http.MethodPost, "/api/patients", s.token(t, utils.RolePatient), map[string]string{
		"fullName": "Pat Smith",
		"dob":      "1990-01-02",
		"email":    "pat@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "/api/patients/5", rec.Header().Get("Location"))
	assert.Equal(t, "Resource created successfully", env.Message)

	var patient map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &patient))
	assert.Equal(t, "1990-01-02T00:00:00Z", patient["dob"])
}

func TestCreatePatient_BadDOB(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodPost, "/api/patients", s.token(t, utils.RolePatient), map[string]string{
		"fullName": "Pat Smith",
		"dob":      "02/01/1990",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, middlewares.MessageValidationFailed, env.Message)
	assert.Contains(t, env.Errors, "dob")
	assert.NotContains(t, env.Errors, "body")
}

// capturedArgs records the values bound to an INSERT so a later SELECT can
// answer with exactly what was stored.
type capturedArgs []driver.Value

func (c *capturedArgs) arg() sqlmock.Argument {
	return captureArg{into: c}
}

type captureArg struct {
	into *capturedArgs
}

func (a captureArg) Match(v driver.Value) bool {
	*a.into = append(*a.into, v)
	return true
}

func TestPrescriptionRoundTrip(t *testing.T) {
	s := newTestServer(t)
	doctor := s.token(t, utils.RoleDoctor)

	var stored capturedArgs
	s.mock.ExpectQuery(`INSERT INTO "prescriptions" \("patient_id","doctor_id","date_issued"\)`).
		WithArgs(stored.arg(), stored.arg(), stored.arg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))

	rec, env := s.do(t, http.MethodPost, "/api/clinical/prescriptions", doctor, map[string]interface{}{
		"patientId":  3,
		"doctorId":   4,
		"dateIssued": "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Len(t, stored, 3)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	s.mock.ExpectQuery(`SELECT pr.id, pr.patient_id, pr.doctor_id, pr.date_issued, .* FROM prescriptions AS pr .* WHERE pr.id = \$1`).
		WithArgs(8, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "doctor_id", "date_issued", "patient_name", "doctor_name"}).
			AddRow(8, stored[0], stored[1], stored[2], "Pat Smith", "Dr. Grey"))

	rec, env = s.do(t, http.MethodGet, "/api/clinical/prescriptions/8", doctor, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var fetched map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	for _, field := range []string{"id", "patientId", "doctorId", "dateIssued"} {
		assert.Equal(t, created[field], fetched[field], field)
	}
	assert.Equal(t, float64(3), fetched["patientId"])
	assert.Equal(t, "2024-03-01T00:00:00Z", fetched["dateIssued"])
	assert.Equal(t, "Dr. Grey", fetched["doctorName"])
}

func TestCreateAddress_MissingPatient(t *testing.T) {
	s := newTestServer(t)

	s.mock.ExpectQuery(`INSERT INTO "patient_addresses"`).
		WillReturnError(pgErr("23503"))

	rec, env := s.do(t, http.MethodPost, "/api/patients/77/addresses", s.token(t, utils.RoleAdmin), map[string]string{
		"addressLine": "1 Main St",
		"city":        "Springfield",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Referenced record does not exist", env.Message)
}

func TestDeleteDepartment(t *testing.T) {
	s := newTestServer(t)
	admin := s.token(t, utils.RoleAdmin)

	s.mock.ExpectExec(`DELETE FROM "departments" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	rec, _ := s.do(t, http.MethodDelete, "/api/doctors/departments/99", admin, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	s.mock.ExpectExec(`DELETE FROM "departments" WHERE id = \$1`).
		WillReturnError(pgErr("23503"))
	rec, env := s.do(t, http.MethodDelete, "/api/doctors/departments/1", admin, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Resource is referenced by other records", env.Message)

	s.mock.ExpectExec(`DELETE FROM "departments" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	rec, _ = s.do(t, http.MethodDelete, "/api/doctors/departments/2", admin, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestInvalidID(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/api/appointments/abc", s.token(t, utils.RolePatient), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Errors, "id")
}

func TestPasswordResetUnavailable(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(t, http.MethodPost, "/api/auth/password/reset-code", "", map[string]string{"email": "ann@example.com"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestOperationalEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metrics := httptest.NewRecorder()
	s.router.ServeHTTP(metrics, req)
	assert.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), "hospital_http_requests_total")

	rec, env = s.do(t, http.MethodGet, "/api/nothing-here", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
}

func pgErr(code string) error {
	return &pgconn.PgError{Code: code}
}
