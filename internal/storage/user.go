package storage

import (
	"database/sql"

	"restaurant-backend/internal/domain"
)

func (r *PostgresRepository) CreateUser(user *domain.User) error {
	err := r.DB.QueryRow(`
		INSERT INTO users (full_name, email, password_hash, address, birth_date, gender, phone_number, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, user.FullName, user.Email, user.PasswordHash, user.Address, user.BirthDate,
		user.Gender, user.PhoneNumber, user.IsAdmin).Scan(&user.ID, &user.CreatedAt)
	if err != nil && isUniqueViolation(err) {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *PostgresRepository) GetUserByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(`
		SELECT id, full_name, email, password_hash, COALESCE(address, ''), birth_date, COALESCE(gender, ''), COALESCE(phone_number, ''), is_admin, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &user.Address,
		&user.BirthDate, &user.Gender, &user.PhoneNumber, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) UpdateUser(user *domain.User) error {
	result, err := r.DB.Exec(`
		UPDATE users
		SET full_name = $1, address = $2, birth_date = $3, gender = $4, phone_number = $5
		WHERE id = $6
	`, user.FullName, user.Address, user.BirthDate, user.Gender, user.PhoneNumber, user.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
