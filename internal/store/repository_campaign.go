package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/MKhiriev/go-fundraiser/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// campaignRepository is the PostgreSQL-backed implementation of
// [CampaignRepository]. Statements are assembled with squirrel so that list
// filters can be combined freely.
type campaignRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
}

func NewCampaignRepository(db *DB, ids IDGenerator, logger *logger.Logger) CampaignRepository {
	logger.Debug().Msg("creating campaign repository")
	return &campaignRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

func (r *campaignRepository) CreateCampaign(ctx context.Context, campaign models.Campaign) (models.Campaign, error) {
	if campaign.Status == "" {
		campaign.Status = models.CampaignPending
	}

	query, args, err := psql.Insert(campaignsTable).
		Columns("id", "title", "slug", "description", "goal_amount", "banner", "category_id", "owner_id", "status").
		Values(r.ids.Generate(), campaign.Title, campaign.Slug, campaign.Description, campaign.GoalAmount,
			campaign.Banner, campaign.CategoryID, campaign.OwnerID, campaign.Status).
		Suffix("RETURNING " + strings.Join(campaignColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanCampaign(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Campaign{}, r.mapError(ctx, "*campaignRepository.CreateCampaign", err)
	}

	return created, nil
}

func (r *campaignRepository) FindCampaignByID(ctx context.Context, id string) (models.Campaign, error) {
	return r.findOne(ctx, "*campaignRepository.FindCampaignByID", sq.Eq{"id": id})
}

func (r *campaignRepository) FindCampaignBySlug(ctx context.Context, slug string) (models.Campaign, error) {
	return r.findOne(ctx, "*campaignRepository.FindCampaignBySlug", sq.Eq{"slug": slug})
}

// ListCampaigns returns one page of campaigns matching filter, newest first,
// together with the total number of matches.
func (r *campaignRepository) ListCampaigns(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, int64, error) {
	log := logger.FromContext(ctx)
	where := campaignFilterWhere(filter)

	countQuery, countArgs, err := psql.Select("COUNT(*)").From(campaignsTable).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*campaignRepository.ListCampaigns").Msg("error counting campaigns")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := psql.Select(campaignColumns...).
		From(campaignsTable).
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*campaignRepository.ListCampaigns").Msg("error listing campaigns")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	campaigns := make([]models.Campaign, 0, filter.Limit)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return campaigns, total, nil
}

// UpdateCampaign overwrites the editable fields of the campaign identified by
// campaign.ID. Slug, owner and collected amount never change here.
func (r *campaignRepository) UpdateCampaign(ctx context.Context, campaign models.Campaign) (models.Campaign, error) {
	query, args, err := psql.Update(campaignsTable).
		SetMap(map[string]any{
			"title":       campaign.Title,
			"description": campaign.Description,
			"goal_amount": campaign.GoalAmount,
			"banner":      campaign.Banner,
			"category_id": campaign.CategoryID,
			"status":      campaign.Status,
			"updated_at":  sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": campaign.ID}).
		Suffix("RETURNING " + strings.Join(campaignColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanCampaign(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Campaign{}, r.mapError(ctx, "*campaignRepository.UpdateCampaign", err)
	}

	return updated, nil
}

func (r *campaignRepository) DeleteCampaign(ctx context.Context, id string) error {
	query, args, err := psql.Delete(campaignsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.mapError(ctx, "*campaignRepository.DeleteCampaign", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrCampaignNotFound
	}

	return nil
}

func (r *campaignRepository) findOne(ctx context.Context, funcName string, where sq.Sqlizer) (models.Campaign, error) {
	query, args, err := psql.Select(campaignColumns...).From(campaignsTable).Where(where).ToSql()
	if err != nil {
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanCampaign(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Campaign{}, r.mapError(ctx, funcName, err)
	}

	return found, nil
}

func (r *campaignRepository) mapError(ctx context.Context, funcName string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCampaignNotFound
	}

	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("campaign query failed")

	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrSlugAlreadyExists
	case pgerrcode.ForeignKeyViolation:
		return ErrCategoryNotFound
	case pgerrcode.InvalidTextRepresentation:
		return ErrCampaignNotFound
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

// campaignFilterWhere translates a filter into a conjunction of predicates.
func campaignFilterWhere(filter models.CampaignFilter) sq.And {
	where := sq.And{}
	if filter.Search != "" {
		where = append(where, sq.ILike{"title": "%" + escapeLike(filter.Search) + "%"})
	}
	if filter.CategoryID != "" {
		where = append(where, sq.Eq{"category_id": filter.CategoryID})
	}
	if filter.Status != "" {
		where = append(where, sq.Eq{"status": filter.Status})
	}
	return where
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (models.Campaign, error) {
	var c models.Campaign
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Slug,
		&c.Description,
		&c.GoalAmount,
		&c.Collected,
		&c.Banner,
		&c.CategoryID,
		&c.OwnerID,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
