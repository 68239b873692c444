// Package alert implements the alert dispatcher: on a newly stored
// article matching the negative-sentiment/scheme trigger predicate, it
// inserts a PIBAlert row (unique per article, duplicates skipped) and
// attempts an email notification, tracking email_sent independently of the
// alert row itself, using internal/smtpclient for delivery.
package alert

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/prajwalm-hub/newsscope/internal/apperrors"
	"github.com/prajwalm-hub/newsscope/internal/logging"
	"github.com/prajwalm-hub/newsscope/internal/models"
	"github.com/prajwalm-hub/newsscope/internal/smtpclient"
)

const alertSubject = "PIB Alert: Negative Sentiment Detected in Scheme-Related News"

// Trigger bundles the signals needed to evaluate the alert predicate,
// gathered from the stored EnrichedItem.
type Trigger struct {
	ArticleID      int64
	Title          string
	Summary        string
	Link           string
	Language       string
	SentimentLabel models.SentimentLabel
	SentimentScore float64
	Schemes        []string
}

// ShouldAlert reports whether t crosses the negative-sentiment/scheme
// trigger: alerting must be enabled, the sentiment must be negative and at
// or above threshold, and at least one government scheme must be attached.
func ShouldAlert(enabled bool, threshold float64, t Trigger) bool {
	return enabled &&
		t.SentimentLabel == models.SentimentNegative &&
		t.SentimentScore >= threshold &&
		len(t.Schemes) > 0
}

// Dispatcher evaluates the trigger predicate and, on a match, persists and
// emails a PIB alert.
type Dispatcher struct {
	db               *sqlx.DB
	smtp             *smtpclient.Client
	log              *logging.Logger
	alertEnabled     bool
	alertThreshold   float64
	smtpEnabled      bool
	pibAlertEmail    string
	frontendURL      string
	statementTimeout time.Duration
}

// Config bundles the tunables a Dispatcher needs from the process config.
type Config struct {
	AlertEnabled     bool
	AlertThreshold   float64
	SMTPEnabled      bool
	PIBAlertEmail    string
	FrontendURL      string
	StatementTimeout time.Duration
}

// New builds a Dispatcher. smtp may be nil when SMTPEnabled is false.
func New(db *sqlx.DB, smtp *smtpclient.Client, log *logging.Logger, cfg Config) *Dispatcher {
	return &Dispatcher{
		db:               db,
		smtp:             smtp,
		log:              log,
		alertEnabled:     cfg.AlertEnabled,
		alertThreshold:   cfg.AlertThreshold,
		smtpEnabled:      cfg.SMTPEnabled,
		pibAlertEmail:    cfg.PIBAlertEmail,
		frontendURL:      cfg.FrontendURL,
		statementTimeout: cfg.StatementTimeout,
	}
}

// Dispatch evaluates t against the trigger predicate and, on a match,
// inserts a PIBAlert row (skipping if one already exists for ArticleID)
// then attempts email delivery. Email failures do not roll back the
// inserted alert row; the alert record and the email outcome are tracked
// independently.
func (d *Dispatcher) Dispatch(ctx context.Context, t Trigger) error {
	if !ShouldAlert(d.alertEnabled, d.alertThreshold, t) {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, d.statementTimeout)
	defer cancel()

	log := d.log.With("article_id", t.ArticleID)
	if cycleID := logging.CycleIDFrom(ctx); cycleID != "" {
		log = log.With("cycle_id", cycleID)
	}

	var existingID int64
	err := d.db.GetContext(ctx, &existingID, `SELECT id FROM pib_alerts WHERE article_id = $1`, t.ArticleID)
	switch {
	case err == nil:
		log.Debug("alert already exists for article, skipping duplicate")
		return nil
	case !errors.Is(err, sql.ErrNoRows):
		return apperrors.NewAlertError(fmt.Sprint(t.ArticleID), "failed to check for existing alert", err)
	}

	alertID, err := d.insert(ctx, t)
	if err != nil {
		return err
	}

	if !d.smtpEnabled || d.smtp == nil {
		log.Info("smtp disabled, pib alert recorded without email")
		return nil
	}

	sendErr := d.smtp.Send(buildMessage(d.pibAlertEmail, d.frontendURL, t))
	if sendErr != nil {
		log.Error("failed to send pib alert email", "error", sendErr)
	}
	if err := d.markEmailSent(ctx, alertID, sendErr == nil); err != nil {
		log.Error("failed to update alert email status", "error", err)
	}
	return nil
}

func (d *Dispatcher) insert(ctx context.Context, t Trigger) (int64, error) {
	const q = `
	INSERT INTO pib_alerts (article_id, title, summary, link, language, sentiment_score, is_reviewed, email_sent)
	VALUES ($1, $2, $3, $4, $5, $6, false, false)
	RETURNING id`

	var id int64
	if err := d.db.GetContext(ctx, &id, q, t.ArticleID, t.Title, t.Summary, t.Link, t.Language, t.SentimentScore); err != nil {
		return 0, apperrors.NewAlertError(fmt.Sprint(t.ArticleID), "failed to insert pib alert", err)
	}
	return id, nil
}

func (d *Dispatcher) markEmailSent(ctx context.Context, alertID int64, sent bool) error {
	const q = `UPDATE pib_alerts SET email_sent = $1, email_sent_at = $2, updated_at = now() WHERE id = $3`
	var sentAt *time.Time
	if sent {
		now := time.Now()
		sentAt = &now
	}
	_, err := d.db.ExecContext(ctx, q, sent, sentAt, alertID)
	return err
}

func buildMessage(to, frontendURL string, t Trigger) smtpclient.Message {
	schemesText := "None detected"
	if len(t.Schemes) > 0 {
		schemesText = strings.Join(t.Schemes, ", ")
	}
	summary := t.Summary
	if summary == "" {
		summary = "Not available"
	}

	text := fmt.Sprintf(`Dear Officer,

This is an automated alert from the NewsScope India monitoring system.

A news article with negative sentiment related to government schemes has been detected and requires your attention.

ARTICLE DETAILS:

Title: %s

Summary: %s

Source Link: %s

Language: %s

Sentiment Score: %.2f (Negative)

Government Schemes Mentioned: %s

RECOMMENDED ACTION:
Please review this article and assess whether any official response or corrective action is required.

Access the alert dashboard at: %s/pib-alerts

Best regards,
NewsScope India Alert System

Note: This is an automated message. Please do not reply to this email.
`, t.Title, summary, t.Link, strings.ToUpper(t.Language), t.SentimentScore, schemesText, frontendURL)

	html := fmt.Sprintf(`<html>
<head>
<style>
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 650px; margin: 0 auto; background-color: #f5f5f5; }
.header { background-color: #1e3a8a; color: white; padding: 25px 30px; }
.content { background-color: white; padding: 30px; }
.info-row { margin: 12px 0; padding: 12px; background-color: #f9fafb; border-left: 3px solid #dc2626; }
.label { font-weight: 600; color: #4b5563; display: block; margin-bottom: 5px; font-size: 13px; }
.action-section { margin-top: 30px; padding: 20px; background-color: #fef2f2; border-radius: 5px; }
.button { display: inline-block; padding: 12px 24px; background-color: #1e3a8a; color: white; text-decoration: none; border-radius: 4px; }
.footer { padding: 20px 30px; text-align: center; color: #6b7280; font-size: 12px; background-color: #f9fafb; }
</style>
</head>
<body>
<div class="container">
<div class="header"><h2>Press Information Bureau - Alert Notification</h2></div>
<div class="content">
<p>Dear Officer,</p>
<p>This is an automated alert from the NewsScope India monitoring system. A news article with negative sentiment related to government schemes has been detected and requires your attention.</p>
<div class="info-row"><span class="label">Title</span><span>%s</span></div>
<div class="info-row"><span class="label">Summary</span><span>%s</span></div>
<div class="info-row"><span class="label">Source Link</span><span><a href="%s">%s</a></span></div>
<div class="info-row"><span class="label">Language</span><span>%s</span></div>
<div class="info-row"><span class="label">Sentiment Score</span><span style="color:#dc2626;font-weight:600;">%.2f (Negative)</span></div>
<div class="info-row"><span class="label">Government Schemes Mentioned</span><span>%s</span></div>
<div class="action-section">
<h4>Recommended Action</h4>
<p>Please review this article and assess whether any official response or corrective action is required.</p>
<a href="%s/pib-alerts" class="button">Access Alert Dashboard</a>
</div>
</div>
<div class="footer">
<p><strong>NewsScope India Alert System</strong></p>
<p>This is an automated message. Please do not reply to this email.</p>
</div>
</div>
</body>
</html>`, t.Title, summary, t.Link, t.Link, strings.ToUpper(t.Language), t.SentimentScore, schemesText, frontendURL)

	return smtpclient.Message{
		To:       to,
		Subject:  alertSubject,
		TextBody: text,
		HTMLBody: html,
	}
}
