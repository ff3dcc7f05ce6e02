package repository

import (
	"context"
	"database/sql"
	"errors"
	"github.com/QuangTung97/promo-schedule/model"
	"github.com/jmoiron/sqlx"
)

// Campaign ...
type Campaign interface {
	ListCampaigns(ctx context.Context) ([]model.Campaign, error)
	GetCampaign(ctx context.Context, id string) (model.NullCampaign, error)
	SelectCampaigns(ctx context.Context, ids []string) ([]model.Campaign, error)

	// LockCampaign returns the current version, sql.ErrNoRows when not found
	LockCampaign(ctx context.Context, id string) (int64, error)

	InsertCampaign(ctx context.Context, campaign model.Campaign) error
	UpdateCampaign(ctx context.Context, campaign model.Campaign) error
	DeleteCampaign(ctx context.Context, id string) error
}

type campaignImpl struct {
}

// NewCampaign ...
func NewCampaign() Campaign {
	return &campaignImpl{}
}

const selectCampaignColumns = `SELECT id, type, start_date, end_date, budget_max, version FROM campaign`

const selectWindowColumns = `SELECT campaign_id, seq, weekdays, start_minute, end_minute FROM campaign_window`

// ListCampaigns in insertion order
func (c *campaignImpl) ListCampaigns(ctx context.Context) ([]model.Campaign, error) {
	query := selectCampaignColumns + ` ORDER BY created_at, id`

	db := GetReadonly(ctx)

	var campaigns []model.Campaign
	err := db.SelectContext(ctx, &campaigns, query)
	if err != nil {
		return nil, err
	}
	if len(campaigns) == 0 {
		return nil, nil
	}

	var windows []model.CampaignWindow
	err = db.SelectContext(ctx, &windows, selectWindowColumns+` ORDER BY campaign_id, seq`)
	if err != nil {
		return nil, err
	}

	attachWindows(campaigns, windows)
	return campaigns, nil
}

func attachWindows(campaigns []model.Campaign, windows []model.CampaignWindow) {
	windowMap := map[string][]model.CampaignWindow{}
	for _, w := range windows {
		windowMap[w.CampaignID] = append(windowMap[w.CampaignID], w)
	}
	for i := range campaigns {
		campaigns[i].Windows = windowMap[campaigns[i].ID]
	}
}

// SelectCampaigns returns the campaigns with ids, missing ids are skipped
func (c *campaignImpl) SelectCampaigns(ctx context.Context, ids []string) ([]model.Campaign, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	db := GetReadonly(ctx)

	query, args, err := sqlx.In(selectCampaignColumns+` WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}

	var campaigns []model.Campaign
	err = db.SelectContext(ctx, &campaigns, query, args...)
	if err != nil {
		return nil, err
	}
	if len(campaigns) == 0 {
		return nil, nil
	}

	query, args, err = sqlx.In(selectWindowColumns+` WHERE campaign_id IN (?) ORDER BY campaign_id, seq`, ids)
	if err != nil {
		return nil, err
	}

	var windows []model.CampaignWindow
	err = db.SelectContext(ctx, &windows, query, args...)
	if err != nil {
		return nil, err
	}

	attachWindows(campaigns, windows)
	return campaigns, nil
}

// GetCampaign ...
func (c *campaignImpl) GetCampaign(ctx context.Context, id string) (model.NullCampaign, error) {
	db := GetReadonly(ctx)

	var campaign model.Campaign
	err := db.GetContext(ctx, &campaign, selectCampaignColumns+` WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullCampaign{}, nil
	}
	if err != nil {
		return model.NullCampaign{}, err
	}

	err = db.SelectContext(ctx, &campaign.Windows, selectWindowColumns+` WHERE campaign_id = ? ORDER BY seq`, id)
	if err != nil {
		return model.NullCampaign{}, err
	}

	return model.NullCampaign{
		Valid:    true,
		Campaign: campaign,
	}, nil
}

// LockCampaign ...
func (c *campaignImpl) LockCampaign(ctx context.Context, id string) (int64, error) {
	query := `SELECT version FROM campaign WHERE id = ? FOR UPDATE`
	var version int64
	err := GetTx(ctx).GetContext(ctx, &version, query, id)
	return version, err
}

func insertWindows(ctx context.Context, tx Transaction, campaign model.Campaign) error {
	if len(campaign.Windows) == 0 {
		return nil
	}

	windows := make([]model.CampaignWindow, 0, len(campaign.Windows))
	for i, w := range campaign.Windows {
		w.CampaignID = campaign.ID
		w.Seq = i
		windows = append(windows, w)
	}

	query := `
INSERT INTO campaign_window (campaign_id, seq, weekdays, start_minute, end_minute)
VALUES (:campaign_id, :seq, :weekdays, :start_minute, :end_minute)
`
	_, err := tx.NamedExecContext(ctx, query, windows)
	return err
}

// InsertCampaign ...
func (c *campaignImpl) InsertCampaign(ctx context.Context, campaign model.Campaign) error {
	query := `
INSERT INTO campaign (id, type, start_date, end_date, budget_max, version)
VALUES (:id, :type, :start_date, :end_date, :budget_max, :version)
`
	tx := GetTx(ctx)
	_, err := tx.NamedExecContext(ctx, query, campaign)
	if err != nil {
		return err
	}
	return insertWindows(ctx, tx, campaign)
}

// UpdateCampaign replaces the campaign fields and all of its windows
func (c *campaignImpl) UpdateCampaign(ctx context.Context, campaign model.Campaign) error {
	query := `
UPDATE campaign SET
	type = :type,
	start_date = :start_date,
	end_date = :end_date,
	budget_max = :budget_max,
	version = :version
WHERE id = :id
`
	tx := GetTx(ctx)
	_, err := tx.NamedExecContext(ctx, query, campaign)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM campaign_window WHERE campaign_id = ?`, campaign.ID)
	if err != nil {
		return err
	}
	return insertWindows(ctx, tx, campaign)
}

// DeleteCampaign ...
func (c *campaignImpl) DeleteCampaign(ctx context.Context, id string) error {
	tx := GetTx(ctx)
	_, err := tx.ExecContext(ctx, `DELETE FROM campaign_window WHERE campaign_id = ?`, id)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM campaign WHERE id = ?`, id)
	return err
}
