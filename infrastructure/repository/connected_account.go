package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ig-dashboard-api/internal/domain"
	"github.com/vfg2006/ig-dashboard-api/pkg/secret"
	"github.com/vfg2006/ig-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=connected_account.go -destination=mocks/connected_account.go -package=mocks

const connectedAccountsTable = "connected_accounts"

var connectedAccountColumns = []string{
	"id",
	"user_id",
	"provider",
	"provider_account_id",
	"access_token",
	"token_expires_at",
	"account_username",
	"account_name",
	"profile_picture_url",
	"created_at",
	"updated_at",
}

type ConnectedAccountRepository interface {
	Upsert(ctx context.Context, account *domain.ConnectedAccount) error
	GetLatestByUserID(ctx context.Context, userID string) (*domain.ConnectedAccount, error)
	ListExpiringBefore(ctx context.Context, before time.Time) ([]*domain.ConnectedAccount, error)
}

type connectedAccountRepository struct {
	conn   postgres.Queryer
	sealer *secret.Sealer
}

func NewConnectedAccountRepository(conn postgres.Queryer, sealer *secret.Sealer) ConnectedAccountRepository {
	return &connectedAccountRepository{
		conn:   conn,
		sealer: sealer,
	}
}

// Upsert grava pela chave (user_id, provider, provider_account_id); a última escrita vence
func (r *connectedAccountRepository) Upsert(ctx context.Context, account *domain.ConnectedAccount) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id: %w", err)
	}

	token, err := r.sealer.Seal(account.AccessToken)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if account.UpdatedAt.IsZero() {
		account.UpdatedAt = now
	}

	query, args, err := squirrel.
		Insert(connectedAccountsTable).
		Columns(connectedAccountColumns...).
		Values(
			id,
			account.UserID,
			string(account.Provider),
			account.ProviderAccountID,
			token,
			account.TokenExpiresAt,
			nullString(account.AccountUsername),
			nullString(account.AccountName),
			nullString(account.ProfilePictureURL),
			now,
			account.UpdatedAt,
		).
		Suffix(`ON CONFLICT (user_id, provider, provider_account_id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			token_expires_at = EXCLUDED.token_expires_at,
			account_username = EXCLUDED.account_username,
			account_name = EXCLUDED.account_name,
			profile_picture_url = EXCLUDED.profile_picture_url,
			updated_at = EXCLUDED.updated_at
			RETURNING id, created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return wrapDBError(err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":             account.UserID,
		"provider":            account.Provider,
		"provider_account_id": account.ProviderAccountID,
	}).Debug("token: connected account saved")

	return nil
}

// GetLatestByUserID devolve a conta atualizada mais recentemente, ou nil se o usuário não tiver nenhuma
func (r *connectedAccountRepository) GetLatestByUserID(ctx context.Context, userID string) (*domain.ConnectedAccount, error) {
	query, args, err := squirrel.
		Select(connectedAccountColumns...).
		From(connectedAccountsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("updated_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	account, err := r.deserialize(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError(err)
	}

	return account, nil
}

// ListExpiringBefore lista as contas cujo token vence antes de before (inclusive as já vencidas)
func (r *connectedAccountRepository) ListExpiringBefore(ctx context.Context, before time.Time) ([]*domain.ConnectedAccount, error) {
	query, args, err := squirrel.
		Select(connectedAccountColumns...).
		From(connectedAccountsTable).
		Where(squirrel.Lt{"token_expires_at": before}).
		OrderBy("token_expires_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	accounts := make([]*domain.ConnectedAccount, 0)
	for rows.Next() {
		account, err := r.deserialize(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err)
	}

	return accounts, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *connectedAccountRepository) deserialize(row scanner) (*domain.ConnectedAccount, error) {
	account := &domain.ConnectedAccount{}

	var (
		provider          string
		token             string
		expiresAt         sql.NullTime
		username          sql.NullString
		name              sql.NullString
		profilePictureURL sql.NullString
	)

	if err := row.Scan(
		&account.ID,
		&account.UserID,
		&provider,
		&account.ProviderAccountID,
		&token,
		&expiresAt,
		&username,
		&name,
		&profilePictureURL,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}

	plain, err := r.sealer.Open(token)
	if err != nil {
		logrus.WithError(err).WithField("user_id", account.UserID).Error("token: failed to open stored token")
		return nil, err
	}

	account.Provider = domain.Provider(provider)
	account.AccessToken = plain
	account.AccountUsername = username.String
	account.AccountName = name.String
	account.ProfilePictureURL = profilePictureURL.String
	if expiresAt.Valid {
		t := expiresAt.Time
		account.TokenExpiresAt = &t
	}

	return account, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func wrapDBError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		logrus.WithFields(logrus.Fields{
			"code":   pqErr.Code,
			"detail": pqErr.Detail,
		}).Error("Erro de banco de dados")
		return fmt.Errorf("database error: %w (code: %s)", err, pqErr.Code)
	}
	return err
}
