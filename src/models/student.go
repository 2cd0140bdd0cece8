package models

// Student records are stored as raw documents because seeded data carries
// several generations of field names (name/Name, mobileno/mobile/phone, ...).
// StudentProfile is the resolved view after the alias table in
// services/profiles has been applied.
type StudentProfile struct {
	Key          string  `json:"key"` // record key: pre-reg key or session uid
	UID          string  `json:"uid,omitempty"`
	StudentID    string  `json:"studentId"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Age          string  `json:"age"`
	Gender       string  `json:"gender"`
	FatherName   string  `json:"fatherName"`
	MotherName   string  `json:"motherName"`
	ParentMobile string  `json:"parentMobile"`
	Address      string  `json:"address"`
	Course       string  `json:"course"`
	GradYear     string  `json:"gradYear"`
	GPA          float64 `json:"gpa"`
	Attendance   float64 `json:"attendancePercentage"`
	PastFailures int     `json:"pastFailures"`
	FeesDue      string  `json:"feesDue"` // "Paid" หรือ "Due"
}

// RankedStudent is one row of the counselor list: the heuristic score is a
// sort key only, the real score comes from the assessment endpoint.
type RankedStudent struct {
	Key            string `json:"key"`
	Name           string `json:"name"`
	Course         string `json:"course"`
	HeuristicScore int    `json:"heuristicScore"`
}

// EnrollStudentRequest รับข้อมูลนิสิตใหม่จาก counselor
type EnrollStudentRequest struct {
	Name         string  `json:"name" validate:"required"`
	Email        string  `json:"emailid" validate:"required,email"`
	Mobile       string  `json:"mobileno" validate:"required"`
	Age          int     `json:"age" validate:"gte=0"`
	Gender       string  `json:"gender"`
	Course       string  `json:"course_enrollment" validate:"required"`
	GradYear     int     `json:"year_of_graduation" validate:"gte=2000"`
	GPA          float64 `json:"gpa" validate:"gte=0,lte=10"`
	FatherName   string  `json:"father_name"`
	MotherName   string  `json:"mother_name"`
	ParentMobile string  `json:"parent_mobile_number"`
	Address      string  `json:"address"`
}
