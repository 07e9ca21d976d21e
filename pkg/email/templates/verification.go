package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// VerificationEmailProps are the values shown in the email-verification message.
type VerificationEmailProps struct {
	AppName         string
	Username        string
	VerificationURL string
}

// VerificationEmail renders the account verification message.
func VerificationEmail(p VerificationEmailProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		app := templ.EscapeString(p.AppName)
		user := templ.EscapeString(p.Username)
		href := templ.EscapeString(string(templ.URL(p.VerificationURL)))

		_, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Account Verification</title></head>`+
			`<body style="margin:auto;background:#ffffff;padding:0 8px;font-family:sans-serif">`+
			`<div style="margin:40px auto;max-width:465px;border:1px solid #e5e7eb;border-radius:4px;padding:20px">`+
			`<h1 style="margin:30px 0;text-align:center;font-size:24px;font-weight:normal;color:#000">Welcome to <strong>`+app+`</strong></h1>`+
			`<p style="font-size:14px;line-height:24px;color:#000">Hello <span style="font-weight:600">`+user+`</span>,</p>`+
			`<p style="font-size:14px;line-height:24px;color:#000">Thank you for joining `+app+`! To activate your account, please click the verification link below:</p>`+
			`<div style="margin:32px 0"><a href="`+href+`" style="border-radius:4px;background:#000;padding:12px 20px;font-size:14px;font-weight:600;color:#fff;text-decoration:none">Verify my account</a></div>`+
			`<hr style="margin:26px 0;width:100%;border:1px solid #eaeaea">`+
			`<p style="font-size:12px;line-height:24px;color:#666">This invitation was intended for <span style="color:#000">`+user+`</span>. `+
			`If you were not expecting this invitation, you can ignore this email. `+
			`If you are concerned about your account's safety, please reply to this email to get in touch with us.</p>`+
			`</div></body></html>`)
		return err
	})
}
