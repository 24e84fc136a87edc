package dto

type DashboardStatsResponse struct {
	TotalAccesses   int64 `json:"total_accesses"`
	ActiveProfiles  int64 `json:"active_profiles"`
	EmergencyAlerts int64 `json:"emergency_alerts"`
}

type PatientListItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Age          *int   `json:"age"`
	BloodType    string `json:"blood_type,omitempty"`
	LastAccessed string `json:"last_accessed"`
}

type PatientListResponse struct {
	Patients   []PatientListItem `json:"patients"`
	TotalCount int               `json:"total_count"`
}

// PatientDashboardResponse is the patient's own dashboard header data.
type PatientDashboardResponse struct {
	User         DashboardUser     `json:"user"`
	Profile      *DashboardProfile `json:"profile"`
	LastAccessed string            `json:"last_accessed"`
}

type DashboardUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
}

type DashboardProfile struct {
	ID                   string `json:"id"`
	FullName             string `json:"full_name"`
	DateOfBirth          string `json:"date_of_birth,omitempty"`
	BloodType            string `json:"blood_type,omitempty"`
	QRGenerated          bool   `json:"qr_generated"`
	CompletionPercentage int    `json:"completion_percentage"`
}

// DoctorDashboardResponse is the doctor's dashboard header data.
type DoctorDashboardResponse struct {
	User   DashboardUser           `json:"user"`
	Doctor *DashboardDoctorProfile `json:"doctor"`
}

type DashboardDoctorProfile struct {
	HospitalName string `json:"hospital_name"`
	Specialty    string `json:"specialty,omitempty"`
	IsVerified   bool   `json:"is_verified"`
}
