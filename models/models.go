package models

// All returns every persisted model in dependency order, for migrations.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Patient{},
		&PatientAddress{},
		&Department{},
		&Specialization{},
		&Doctor{},
		&MedicalRecord{},
		&Diagnosis{},
		&AppointmentStatus{},
		&Appointment{},
		&Admission{},
		&Discharge{},
		&Bill{},
		&BillItem{},
		&InsuranceClaim{},
		&Medicine{},
		&Prescription{},
		&PrescriptionItem{},
		&LabTest{},
		&LabResult{},
	}
}
