package models

const (
	ImpactRisk = "+Risk"
	ImpactSafe = "Safe"
)

// RiskFactor หนึ่งปัจจัยจากคำอธิบาย LIME ของ risk API
type RiskFactor struct {
	Name      string  `json:"name"`
	Condition string  `json:"condition"`
	Impact    string  `json:"impact"`
	Weight    float64 `json:"weight"`
}

// RiskAssessment derived จาก risk API ไม่ persist, คำนวณใหม่ทุกครั้งที่ดู
type RiskAssessment struct {
	RiskScore   float64      `json:"risk_score"`
	Explanation []RiskFactor `json:"explanation"`
}
