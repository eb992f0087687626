package email

import "fmt"

// WelcomeEmail renders the post-signup welcome message.
func WelcomeEmail(firstname string) (subject, body string) {
	subject = "Welcome to the platform"
	body = fmt.Sprintf(`<p>Hi %s,</p>
<p>Your account has been created. You can now log in and start exploring
internships and jobs.</p>`, firstname)
	return subject, body
}
