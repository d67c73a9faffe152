package services

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pawscare/vet-clinic-site/i18n"
	"github.com/pawscare/vet-clinic-site/models"
)

// MailTimeout bounds a single confirmation send
const MailTimeout = 10 * time.Second

//go:embed templates/*.html
var emailTemplates embed.FS

var discountTemplate = template.Must(template.ParseFS(emailTemplates, "templates/opening_discount.html"))

// NotificationService renders and sends registrant-facing email
type NotificationService struct {
	mailer  Mailer
	siteURL string
}

// NewNotificationService creates a new notification service
func NewNotificationService(mailer Mailer, siteURL string) *NotificationService {
	return &NotificationService{
		mailer:  mailer,
		siteURL: siteURL,
	}
}

type discountEmailData struct {
	Lang         string
	Dir          string
	Align        string
	Subject      string
	Brand        string
	Tagline      string
	Greeting     string
	Intro        string
	CodeLabel    string
	Code         string
	Instructions string
	Signoff      []string
	Address      string
	SiteURL      string
}

// RenderOpeningDiscountEmail builds the localized confirmation email for a registration.
// The discount code is the registered phone number.
func (n *NotificationService) RenderOpeningDiscountEmail(reg *models.OpeningDiscount, lang string) (EmailMessage, error) {
	lang = i18n.Normalize(lang)
	dir := i18n.Direction(lang)
	align := "left"
	if dir == "rtl" {
		align = "right"
	}

	data := discountEmailData{
		Lang:         lang,
		Dir:          dir,
		Align:        align,
		Subject:      i18n.T(lang, "email.discount.subject"),
		Brand:        i18n.T(lang, "brand.name"),
		Tagline:      i18n.T(lang, "brand.tagline"),
		Greeting:     fmt.Sprintf(i18n.T(lang, "email.discount.greeting"), reg.FirstName),
		Intro:        i18n.T(lang, "email.discount.intro"),
		CodeLabel:    i18n.T(lang, "email.discount.code_label"),
		Code:         reg.PhoneNumber,
		Instructions: i18n.T(lang, "email.discount.instructions"),
		Signoff:      strings.Split(i18n.T(lang, "email.discount.signoff"), "\n"),
		Address:      i18n.T(lang, "footer.address"),
		SiteURL:      n.siteURL,
	}

	var buf bytes.Buffer
	if err := discountTemplate.Execute(&buf, data); err != nil {
		return EmailMessage{}, fmt.Errorf("failed to render email: %w", err)
	}

	text := strings.Join([]string{
		data.Greeting,
		data.Intro,
		data.CodeLabel + ": " + data.Code,
		data.Instructions,
		strings.Join(data.Signoff, "\n"),
	}, "\n\n")

	return EmailMessage{
		To:      reg.EmailAddress,
		ToName:  strings.TrimSpace(reg.FirstName + " " + reg.LastName),
		Subject: data.Subject,
		HTML:    buf.String(),
		Text:    text,
	}, nil
}

// SendOpeningDiscountConfirmation renders and sends the confirmation email.
// The caller decides what a failure means; registration handlers only log it.
func (n *NotificationService) SendOpeningDiscountConfirmation(ctx context.Context, reg *models.OpeningDiscount, lang string) error {
	msg, err := n.RenderOpeningDiscountEmail(reg, lang)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, MailTimeout)
	defer cancel()

	if err := n.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send confirmation to %s: %w", reg.EmailAddress, err)
	}

	log.Info().Uint("registration_id", reg.ID).Str("lang", i18n.Normalize(lang)).Msg("Opening discount confirmation sent")
	return nil
}
