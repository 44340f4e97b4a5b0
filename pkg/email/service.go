package email

import (
	"fmt"

	"github.com/familiasoares/imobicrm/pkg/logger"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service sends transactional email. With a SendGrid API key it goes
// through SendGrid; without one it logs the message instead, which is
// what development and tests run on.
type Service struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	baseURL   string
	log       logger.Logger
}

// NewService creates a new email service. apiKey may be empty.
func NewService(apiKey, fromEmail, fromName, baseURL string, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	s := &Service{
		fromEmail: fromEmail,
		fromName:  fromName,
		baseURL:   baseURL,
		log:       log,
	}
	if apiKey != "" {
		s.client = sendgrid.NewSendClient(apiKey)
	}
	return s
}

// SendWelcomeEmail greets a newly registered agency admin.
func (s *Service) SendWelcomeEmail(toEmail, toName, agencyName string) error {
	subject := "Bem-vindo ao ImobiCRM"
	body := fmt.Sprintf(
		"Olá %s,\n\n"+
			"A conta da %s está pronta. Acesse %s para começar a cadastrar seus leads.\n\n"+
			"Seu período de teste dura 14 dias.\n\n"+
			"Equipe ImobiCRM",
		toName, agencyName, s.baseURL)
	return s.send(toEmail, toName, subject, body)
}

// SendTrialExpiringEmail warns that the trial ends soon.
func (s *Service) SendTrialExpiringEmail(toEmail, toName string, daysLeft int) error {
	subject := fmt.Sprintf("Seu teste do ImobiCRM termina em %d dias", daysLeft)
	body := fmt.Sprintf(
		"Olá %s,\n\n"+
			"Seu período de teste termina em %d dias. Assine um plano em %s/planos "+
			"para não perder acesso aos seus leads.\n\n"+
			"Equipe ImobiCRM",
		toName, daysLeft, s.baseURL)
	return s.send(toEmail, toName, subject, body)
}

// SendSubscriptionCanceledEmail confirms a cancellation.
func (s *Service) SendSubscriptionCanceledEmail(toEmail, toName string) error {
	subject := "Sua assinatura do ImobiCRM foi cancelada"
	body := fmt.Sprintf(
		"Olá %s,\n\n"+
			"Sua assinatura foi cancelada. Seus dados ficam guardados por 90 dias "+
			"caso queira voltar.\n\n"+
			"Equipe ImobiCRM",
		toName)
	return s.send(toEmail, toName, subject, body)
}

func (s *Service) send(toEmail, toName, subject, body string) error {
	if s.client == nil {
		s.log.Info("email (not sent, no API key)",
			"to", toEmail,
			"subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	resp, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("email rejected with status %d: %s", resp.StatusCode, resp.Body)
	}

	s.log.Info("email sent", "to", toEmail, "subject", subject)
	return nil
}
