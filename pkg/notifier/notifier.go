package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/squatwatch/squatwatch/pkg/domain"
)

//go:generate moq -out mocks/sender.go -pkg mocks -skip-ensure -fmt goimports . Sender

// TemplateFields are the values handed to the email collaborator. Rendering
// them into a message is the collaborator's business.
type TemplateFields struct {
	ToEmail         string `json:"to_email"`
	ThreatDomain    string `json:"threat_domain"`
	Source          string `json:"source"`
	MatchedKeyword  string `json:"matched_keyword"`
	ThreatLevel     string `json:"threat_level"`
	SimilarityScore string `json:"similarity_score"`
	DetectionTime   string `json:"detection_time"`
}

// Sender delivers an alert to its destination
type Sender interface {
	Send(ctx context.Context, fields TemplateFields) error
}

// Dispatcher decides whether a new threat should produce an external
// notification. Delivery failures are logged and never retried; they do not
// affect the already-recorded threat.
type Dispatcher struct {
	sender      Sender
	destination string
}

// NewDispatcher creates a dispatcher. An empty destination disables alerting
// regardless of settings.
func NewDispatcher(sender Sender, destination string) *Dispatcher {
	return &Dispatcher{sender: sender, destination: destination}
}

// MaybeAlert fires an alert for a reportable threat when auto-alerts are
// enabled and a destination is configured. Returns true when the alert was
// delivered.
func (d *Dispatcher) MaybeAlert(ctx context.Context, threat domain.Threat, autoAlerts bool) bool {
	if !autoAlerts || d.destination == "" {
		return false
	}
	if !threat.Level.Reportable() {
		// callers only pass reportable threats, re-asserted here
		return false
	}

	fields := TemplateFields{
		ToEmail:         d.destination,
		ThreatDomain:    threat.Domain,
		Source:          string(threat.Source),
		MatchedKeyword:  threat.MatchedKeyword,
		ThreatLevel:     string(threat.Level),
		SimilarityScore: fmt.Sprintf("%d%%", int(threat.Score*100+0.5)),
		DetectionTime:   threat.DetectedAt.Format(time.RFC3339),
	}

	if err := d.sender.Send(ctx, fields); err != nil {
		lgr.Printf("[WARN] failed to send alert for %s: %v", threat.Domain, err)
		return false
	}

	lgr.Printf("[INFO] alert sent for %s threat %s", threat.Level, threat.Domain)
	return true
}

// TestAlert sends an operator-triggered test message with fixed placeholder
// fields, to verify the delivery configuration.
func (d *Dispatcher) TestAlert(ctx context.Context) error {
	if d.destination == "" {
		return fmt.Errorf("no alert destination configured")
	}

	fields := TemplateFields{
		ToEmail:         d.destination,
		ThreatDomain:    "test-phishing-domain.com",
		Source:          "test",
		MatchedKeyword:  "test-keyword",
		ThreatLevel:     "TEST ALERT",
		SimilarityScore: "95%",
		DetectionTime:   time.Now().Format(time.RFC3339),
	}

	if err := d.sender.Send(ctx, fields); err != nil {
		return fmt.Errorf("send test alert: %w", err)
	}
	return nil
}

// Configured reports whether a destination is set
func (d *Dispatcher) Configured() bool { return d.destination != "" }
