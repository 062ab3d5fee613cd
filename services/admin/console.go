// Package admin backs the admin console: users, platform metrics, the
// statistics export and stylist invitations.
package admin

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"therewecome/models"
	"therewecome/services/api"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	MsgFetchFailed   = "Failed to fetch data. Please try again."
	MsgExportFailed  = "Failed to download statistics. Please try again."
	MsgInviteSent    = "Successfully sent invitation. Check your email."
	msgInviteFailed  = "Failed to send invitation. Please try again."
	statisticsLayout = "2006-01-02"
)

var ErrInvalidEmail = errors.New("a valid email address is required")

var statisticsHeader = []string{
	"Date", "Total Users", "Active Bookings", "Customer Satisfaction", "Avg Service Price", "Total Revenue",
}

type Console struct {
	api      AdminAPI
	token    string
	logger   *zap.Logger
	validate *validator.Validate
	now      func() time.Time
}

func NewConsole(api AdminAPI, sess models.Session, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		api:      api,
		token:    sess.Token,
		logger:   logger,
		validate: validator.New(),
		now:      time.Now,
	}
}

func (c *Console) Users(ctx context.Context) ([]models.UserSummary, error) {
	users, err := c.api.ListUsers(ctx, c.token)
	if err != nil {
		c.logger.Error("Error fetching users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (c *Console) Metrics(ctx context.Context) (*models.Metrics, error) {
	m, err := c.api.GetMetrics(ctx, c.token)
	if err != nil {
		c.logger.Error("Error fetching metrics", zap.Error(err))
		return nil, err
	}
	return m, nil
}

// ExportStatistics writes the current metrics as a one-row CSV.
func (c *Console) ExportStatistics(ctx context.Context, w io.Writer) error {
	m, err := c.Metrics(ctx)
	if err != nil {
		return err
	}
	date := m.Date
	if date == "" {
		date = c.now().Format(statisticsLayout)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(statisticsHeader); err != nil {
		return fmt.Errorf("failed to write statistics header: %w", err)
	}
	row := []string{
		date,
		strconv.Itoa(m.TotalUsers),
		strconv.Itoa(m.ActiveBookings),
		strconv.FormatFloat(m.CustomerSatisfactionRate, 'f', -1, 64) + "%",
		fmt.Sprintf("$%.2f", m.AvgServicePrice),
		fmt.Sprintf("$%.2f", m.TotalRevenue),
	}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("failed to write statistics row: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// Invite sends a stylist invitation to email.
func (c *Console) Invite(ctx context.Context, email string) error {
	if err := c.validate.Var(email, "required,email"); err != nil {
		return ErrInvalidEmail
	}
	if err := c.api.Invite(ctx, c.token, email); err != nil {
		c.logger.Warn("Error inviting user", zap.String("email", email), zap.Error(err))
		return err
	}
	c.logger.Info("Invitation sent", zap.String("email", email))
	return nil
}

// InviteFailureMessage is the text shown when Invite fails.
func InviteFailureMessage(err error) string {
	if errors.Is(err, ErrInvalidEmail) {
		return ErrInvalidEmail.Error()
	}
	return api.UserMessage(err, msgInviteFailed)
}
