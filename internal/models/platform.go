// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Platform is a messaging or print surface a listing can be shared to.
type Platform string

const (
	PlatformWhatsApp  Platform = "whatsapp"
	PlatformEmail     Platform = "email"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformMessenger Platform = "messenger"
	PlatformPrint     Platform = "print"
)

// Valid reports whether the platform is one of the supported surfaces.
func (p Platform) Valid() bool {
	switch p {
	case PlatformWhatsApp, PlatformEmail, PlatformFacebook,
		PlatformInstagram, PlatformMessenger, PlatformPrint:
		return true
	}
	return false
}

// PlainText reports whether the platform consumes plain text with
// lightweight markdown instead of HTML markup.
func (p Platform) PlainText() bool {
	switch p {
	case PlatformWhatsApp, PlatformMessenger, PlatformInstagram:
		return true
	}
	return false
}
