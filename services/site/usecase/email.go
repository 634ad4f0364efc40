package usecase

import (
	"context"
	"strings"

	"github.com/redtestlab/portal/internal/pkg/apperrors"
	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/utils"
)

const maxRecipients = 50

// SendEmail checks and sanitizes a composed message before the lab API
// mails it
func (uc *SiteUC) SendEmail(ctx context.Context, msg *models.EmailMessage) error {
	recipients, err := normalizeRecipients(msg.To)
	if err != nil {
		return err
	}

	subject := utils.SanitizeString(msg.Subject)
	if subject == "" {
		return apperrors.Validation("Subject is required")
	}

	body := strings.TrimSpace(uc.policy.Sanitize(msg.HTML))
	if body == "" {
		return apperrors.Validation("Message body is required")
	}

	clean := &models.EmailMessage{To: recipients, Subject: subject, HTML: body}
	if err := uc.siteGW.SendEmail(ctx, clean); err != nil {
		return err
	}

	uc.logger.Info("Email sent",
		logger.Int("recipients", len(recipients)),
		logger.String("subject", subject))
	return nil
}

func normalizeRecipients(to []string) ([]string, error) {
	seen := make(map[string]struct{}, len(to))
	recipients := make([]string, 0, len(to))

	for _, addr := range to {
		addr = strings.ToLower(strings.TrimSpace(addr))
		if addr == "" {
			continue
		}
		if !utils.IsValidEmail(addr) {
			return nil, apperrors.Validation("%s is not a valid email address", addr)
		}
		if _, dup := seen[addr]; dup {
			continue
		}
		seen[addr] = struct{}{}
		recipients = append(recipients, addr)
	}

	switch {
	case len(recipients) == 0:
		return nil, apperrors.Validation("At least one recipient is required")
	case len(recipients) > maxRecipients:
		return nil, apperrors.Validation("At most %d recipients are allowed", maxRecipients)
	}
	return recipients, nil
}
