package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
// ฟิลด์ message ส่งออกเป็น "error" ตาม contract ของ dashboard
type ErrorResponse struct {
	Status  int    `json:"status"` // HTTP Status Code
	Message string `json:"error"`  // รายละเอียดของ Error
	Code    string `json:"code,omitempty"`
}
