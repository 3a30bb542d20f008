package user

import (
	"database/sql"
)

type UserRepoSQL struct {
	db *sql.DB
}

func NewUserRepoSQL(db *sql.DB) *UserRepoSQL {
	return &UserRepoSQL{db: db}
}

func (repo *UserRepoSQL) GetByID(id int64) (*User, error) {
	query := "SELECT `id`, `username`, `password`, `role`, `avatar` FROM users WHERE id = ?"
	return repo.getOne(query, id)
}

func (repo *UserRepoSQL) GetByUsername(username string) (*User, error) {
	query := "SELECT `id`, `username`, `password`, `role`, `avatar` FROM users WHERE username = ?"
	return repo.getOne(query, username)
}

func (repo *UserRepoSQL) Add(user *User) (int64, error) {
	query := "INSERT INTO users (`username`, `password`, `role`, `avatar`) VALUES (?, ?, ?, ?)"
	r, err := repo.db.Exec(query, user.Username, user.Password, user.Role, user.Avatar)
	if err != nil {
		return 0, err
	}

	lastID, err := r.LastInsertId()
	if err != nil {
		return 0, err
	}

	return lastID, nil
}

func (repo *UserRepoSQL) getOne(query string, arg interface{}) (*User, error) {
	r := repo.db.QueryRow(query, arg)

	u := User{}
	err := r.Scan(&u.ID, &u.Username, &u.Password, &u.Role, &u.Avatar)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}
