package mailer

import (
	"errors"
	"fmt"
)

var errNotConfigured = errors.New("mailer not configured (missing RESEND_API_KEY)")

func activationRequestTemplate(firstName, lastName, email, phone string) (string, string) {
	if phone == "" {
		phone = "No proporcionado"
	}

	subject := "Solicitud de Activación - Thai Massage Manager"
	body := fmt.Sprintf(`Nuevo usuario registrado que requiere activación:

Nombre: %s %s
Email: %s
Teléfono: %s

Por favor, accede al panel de administración para activar esta cuenta.
`, firstName, lastName, email, phone)

	return subject, body
}

func welcomeTemplate(firstName string) (string, string) {
	subject := "Bienvenido a Thai Massage Manager"
	body := fmt.Sprintf(`Hola %s,

Tu cuenta ha sido activada exitosamente en Thai Massage Manager.

Ahora puedes acceder al sistema y comenzar a registrar tus sesiones de trabajo.

¡Bienvenido!
`, firstName)

	return subject, body
}

func resetNoticeTemplate(firstName, lastName, email, token string) (string, string) {
	subject := "Restablecer Contraseña - Thai Massage Manager"
	body := fmt.Sprintf(`Solicitud de restablecimiento de contraseña:

Nombre: %s %s
Email: %s

Token de restablecimiento (válido 24 horas, un solo uso):

    %s

Por favor, haz llegar este token al usuario para que complete el cambio.
`, firstName, lastName, email, token)

	return subject, body
}
