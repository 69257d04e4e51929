package email

// GlobalEmailService is the process-wide sender, wired in main. A nil
// service means mail is disabled (local development); callers must
// check before use.
var GlobalEmailService *EmailService

func InitEmailService(apiKey, from string) error {
	service, err := NewEmailService(apiKey, from)
	if err != nil {
		return err
	}

	GlobalEmailService = service
	return nil
}
