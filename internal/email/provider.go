package email

// Provider sends transactional mail. The auth flow only ever sends
// best-effort messages; a Provider error never fails a request.
type Provider interface {
	Send(to, subject, htmlBody string) error
}
