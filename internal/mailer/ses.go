// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package mailer sends share emails through AWS SES. The HTML body is
// the substituted template; a plain-text alternative is derived from it
// for clients that won't render markup.
package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/jaytaylor/html2text"
)

// Client wraps an SES client bound to a verified sender address.
type Client struct {
	ses    *ses.Client
	sender string
}

// New creates an SES mailer for the given region and sender. Credentials
// come from the default AWS provider chain.
func New(ctx context.Context, region, sender string) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("ses config: %w", err)
	}
	return &Client{ses: ses.NewFromConfig(cfg), sender: sender}, nil
}

// Send delivers one share email. Both an HTML part and a text part
// derived from it are included.
func (c *Client) Send(ctx context.Context, to, subject, htmlBody string) error {
	textBody, err := html2text.FromString(htmlBody, html2text.Options{TextOnly: false})
	if err != nil {
		// Fall back to the raw body rather than losing the email.
		textBody = htmlBody
	}

	input := &ses.SendEmailInput{
		Source:      aws.String(c.sender),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(htmlBody), Charset: aws.String("UTF-8")},
				Text: &types.Content{Data: aws.String(textBody), Charset: aws.String("UTF-8")},
			},
		},
	}

	if _, err := c.ses.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	return nil
}
