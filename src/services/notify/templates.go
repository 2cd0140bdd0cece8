package notify

import "fmt"

// Templates the counselor can trigger from a deep dive view. Wording is
// load-bearing: students and parents recognize these mails.

// BuildAlertEmail renders the rising-risk warning.
func BuildAlertEmail(studentName string) (subject, body string) {
	subject = "⚠️ Critical Alert: Risk Score Increasing"
	body = fmt.Sprintf(
		"Dear %s,\n\n"+
			"We have noticed that your Risk Score is increasing. You need to work on your attendance and grades immediately, otherwise, the risk will increase further and may lead to detainment.\n\n"+
			"Please visit the counselor's office if you need help.\n\n"+
			"- Sentinel System",
		studentName,
	)
	return subject, body
}

// BuildMeetingEmail renders the mandatory-meeting notice.
func BuildMeetingEmail(studentName, meetingTime string) (subject, body string) {
	subject = "📅 Counseling Meeting Scheduled"
	body = fmt.Sprintf(
		"Dear %s,\n\n"+
			"A mandatory counseling meeting has been scheduled for you.\n\n"+
			"Time: %s\n\n"+
			"Please be present at the counselor's office on time.\n\n"+
			"- Sentinel System",
		studentName, meetingTime,
	)
	return subject, body
}
