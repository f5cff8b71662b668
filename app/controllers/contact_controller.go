package controllers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/hazzler78/stromsjef-sub000/app/models"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/hcaptcha"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/mail"
)

type contactForm struct {
	Name    string `validate:"required,min=2,max=100"`
	Email   string `validate:"required,email"`
	Message string `validate:"required,min=10,max=5000"`
}

// HandleContactSubmit stores a contact form submission and acknowledges it
// by email.
func HandleContactSubmit(c *fiber.Ctx) error {
	form := contactForm{
		Name:    strings.TrimSpace(c.FormValue("name")),
		Email:   strings.TrimSpace(c.FormValue("email")),
		Message: strings.TrimSpace(c.FormValue("message")),
	}
	if err := validate.Struct(form); err != nil {
		return flashError(c, "/kontakt", "Fyll ut navn, gyldig e-post og en melding på minst 10 tegn")
	}

	if ok, err := hcaptcha.Verify(c.FormValue("h-captcha-response")); !ok {
		log.Printf("hcaptcha rejected contact submission: %v", err)
		return flashError(c, "/kontakt", "Captcha-verifiseringen feilet, prøv igjen")
	}

	msg := &models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	}
	if err := repos.ContactMessage.Create(msg); err != nil {
		return flashError(c, "/kontakt", "Kunne ikke lagre meldingen, prøv igjen senere")
	}

	// Acknowledgement is best effort; the submission is already stored
	if err := mail.SendContactAck(form.Email, form.Name); err != nil {
		log.Printf("failed to send contact ack to %s: %v", form.Email, err)
	}

	return flashSuccess(c, "/kontakt", "Takk! Vi har mottatt meldingen din.")
}

type subscribeForm struct {
	Email string `validate:"required,email"`
}

// HandleNewsletterSubscribe adds an email to the newsletter list.
func HandleNewsletterSubscribe(c *fiber.Ctx) error {
	form := subscribeForm{Email: strings.ToLower(strings.TrimSpace(c.FormValue("email")))}
	if err := validate.Struct(form); err != nil {
		return flashError(c, "/", "Oppgi en gyldig e-postadresse")
	}

	if _, err := repos.NewsletterSubscriber.GetByEmail(form.Email); err == nil {
		return flashSuccess(c, "/", "Du står allerede på listen.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return flashError(c, "/", "Noe gikk galt, prøv igjen senere")
	}

	sub := &models.NewsletterSubscriber{Email: form.Email}
	if err := repos.NewsletterSubscriber.Create(sub); err != nil {
		return flashError(c, "/", "Noe gikk galt, prøv igjen senere")
	}

	if err := mail.SendNewsletterConfirmation(form.Email); err != nil {
		log.Printf("failed to send newsletter confirmation to %s: %v", form.Email, err)
	}

	return flashSuccess(c, "/", "Takk! Du er nå påmeldt nyhetsbrevet.")
}
