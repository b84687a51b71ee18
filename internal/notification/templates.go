package notification

import (
	"fmt"
	"time"
)

// OnboardingEmail builds the welcome mail carrying the temporary password.
func OnboardingEmail(fullName, tempPassword, loginLink string) (subject, body string) {
	subject = "Welcome aboard - your HRMS account is ready"
	body = fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your account has been created. Sign in with the temporary password below and change it on first login.\n\n"+
			"Temporary password: %s\n"+
			"Login: %s\n\n"+
			"Please upload your onboarding documents after signing in.\n",
		fullName, tempPassword, loginLink,
	)
	return subject, body
}

// PayslipReadyEmail tells an employee their payslip for a period is available.
func PayslipReadyEmail(year, month int) (subject, body string) {
	period := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
	subject = fmt.Sprintf("Your payslip for %s is ready", period)
	body = fmt.Sprintf(
		"Hello,\n\n"+
			"Payroll for %s has been processed. Your payslip is now available in the HRMS portal.\n",
		period,
	)
	return subject, body
}
