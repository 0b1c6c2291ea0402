package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/genius/elearning/internal/app/models"
	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/dberrors"
	"github.com/genius/elearning/internal/pkg/helpers"
	"github.com/genius/elearning/internal/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

const usersPhoneKey = "users_phone_key"

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

var userColumns = []string{
	"u.id", "u.name", "u.phone", "u.guardian_phone", "u.educational_level_id", "u.gender",
	"u.year", "u.password", "u.role", "u.permissions", "u.created_at", "u.updated_at",
}

func (r *UserRepository) selectUsers() squirrel.SelectBuilder {
	return r.sb.Select(append(append([]string{}, userColumns...), levelColumns...)...).
		From("users u").
		LeftJoin("educational_levels el ON el.id = u.educational_level_id")
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	var lvl nullableLevel
	dest := []any{
		&u.ID, &u.Name, &u.Phone, &u.GuardianPhone, &u.EducationalLevelID, &u.Gender,
		&u.Year, &u.Password, &u.Role, &u.Permissions, &u.CreatedAt, &u.UpdatedAt,
	}
	if err := row.Scan(append(dest, lvl.dest()...)...); err != nil {
		return nil, err
	}
	u.EducationalLevel = lvl.model()
	if u.Permissions == nil {
		u.Permissions = []string{}
	}
	return &u, nil
}

func (r *UserRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.User, error) {
	sql, args, err := r.selectUsers().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		err = notFound(err, apperrors.ErrUserNotFound)
		if err != apperrors.ErrUserNotFound {
			logger.Error().Err(err).Msg("Error retrieving user")
		}
		return nil, err
	}
	return user, nil
}

// Create inserts a new user and fills its ID and timestamps
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.Permissions == nil {
		user.Permissions = []string{}
	}

	sql, args, err := r.sb.Insert("users").
		Columns("name", "phone", "guardian_phone", "educational_level_id", "gender", "year", "password", "role", "permissions").
		Values(user.Name, user.Phone, user.GuardianPhone, user.EducationalLevelID, user.Gender, user.Year, user.Password, user.Role, user.Permissions).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, usersPhoneKey) {
			return apperrors.ErrPhoneAlreadyExists
		}
		if dberrors.IsForeignKeyError(err, "") {
			return apperrors.ErrEducationalLevelNotFound
		}
		logger.Error().Err(err).Msg("Error creating user")
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetByID retrieves a user with its educational level
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"u.id": id})
}

// GetByPhone retrieves a user by phone number
func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"u.phone": phone})
}

// PhoneExists checks if the phone number is already registered
func (r *UserRepository) PhoneExists(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE phone = $1)`, phone).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking phone existence: %w", err)
	}
	return exists, nil
}

// UpdateProfile stores name, guardian phone and educational level
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	sql, args, err := r.sb.Update("users").
		Set("name", user.Name).
		Set("guardian_phone", user.GuardianPhone).
		Set("educational_level_id", user.EducationalLevelID).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update profile query: %w", err)
	}
	return r.execOne(ctx, sql, args, "update profile")
}

// UpdatePassword replaces the stored bcrypt hash
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	return r.execOne(ctx,
		`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`,
		[]any{hashedPassword, userID}, "update password")
}

// UpdateRole changes the user's role and permissions
func (r *UserRepository) UpdateRole(ctx context.Context, userID int64, role models.Role, permissions []string) error {
	if permissions == nil {
		permissions = []string{}
	}
	return r.execOne(ctx,
		`UPDATE users SET role = $1, permissions = $2, updated_at = NOW() WHERE id = $3`,
		[]any{role, permissions, userID}, "update role")
}

func (r *UserRepository) execOne(ctx context.Context, sql string, args []any, op string) error {
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyError(err, "") {
			return apperrors.ErrEducationalLevelNotFound
		}
		logger.Error().Err(err).Str("op", op).Msg("Error updating user")
		return fmt.Errorf("error executing %s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// List returns a page of users filtered by role and a name/phone search
func (r *UserRepository) List(ctx context.Context, filter dto.UserFilter, page helpers.PageRequest) ([]*models.User, int64, error) {
	where := squirrel.And{}
	if filter.Role != "" {
		where = append(where, squirrel.Eq{"u.role": filter.Role})
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		where = append(where, squirrel.Or{
			squirrel.ILike{"u.name": pattern},
			squirrel.ILike{"u.phone": pattern},
		})
	}

	total, err := count(ctx, r.db, r.sb.Select("COUNT(*)").From("users u").Where(where), "users")
	if err != nil || total == 0 {
		return []*models.User{}, total, err
	}

	sql, args, err := r.selectUsers().Where(where).
		OrderBy("u.created_at DESC").
		Limit(uint64(page.Limit)).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, 0, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0, page.Limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning user row")
			return nil, 0, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

// IDsByRole returns every user id holding role
func (r *UserRepository) IDsByRole(ctx context.Context, role models.Role) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM users WHERE role = $1 ORDER BY id`, role)
	if err != nil {
		return nil, fmt.Errorf("failed to query user ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// RoleExists reports whether any user holds role
func (r *UserRepository) RoleExists(ctx context.Context, role models.Role) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE role = $1)`, role).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking role existence: %w", err)
	}
	return exists, nil
}
