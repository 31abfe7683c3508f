package mailer

import "html/template"

var verifyEmailTemplate = template.Must(template.New("verify").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; background-color: #f9f9f9; margin: 0; padding: 0;">
    <div style="max-width: 600px; margin: 30px auto; background: #ffffff; border: 1px solid #e0e0e0; border-radius: 10px;">
      <div style="text-align: center; background: #007bff; color: white; padding: 25px;">
        <h1 style="margin: 0; font-size: 24px;">Welcome!</h1>
      </div>
      <div style="padding: 20px 30px; color: #333;">
        <p>Hi {{.FullName}},</p>
        <p>Thanks for signing up. Please confirm your email address to activate your account.</p>
        <p style="text-align: center;">
          <a href="{{.URL}}" style="display: inline-block; background-color: #007bff; color: white; padding: 12px 25px; text-decoration: none; font-weight: bold; border-radius: 5px;">Verify Email</a>
        </p>
        <p>If you did not create an account, you can safely ignore this email.</p>
      </div>
    </div>
  </body>
</html>
`))

var resetPasswordTemplate = template.Must(template.New("reset").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; background-color: #f9f9f9; margin: 0; padding: 0;">
    <div style="max-width: 600px; margin: 30px auto; background: #ffffff; border: 1px solid #e0e0e0; border-radius: 10px;">
      <div style="text-align: center; background: #007bff; color: white; padding: 25px;">
        <h1 style="margin: 0; font-size: 24px;">Password Reset</h1>
      </div>
      <div style="padding: 20px 30px; color: #333;">
        <p>We received a request to reset your password. The link below is valid for one hour.</p>
        <p style="text-align: center;">
          <a href="{{.URL}}" style="display: inline-block; background-color: #007bff; color: white; padding: 12px 25px; text-decoration: none; font-weight: bold; border-radius: 5px;">Reset Password</a>
        </p>
        <p>If you did not request a password reset, no action is needed.</p>
      </div>
    </div>
  </body>
</html>
`))
