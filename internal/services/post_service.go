package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/isdelr/md-editor-be/internal/models"
)

// PostServiceProvider defines the interface for post services. Every
// operation is scoped to the owner resolved from the caller's token; a post
// that is absent and a post that belongs to someone else are both reported
// as models.ErrNotFound.
type PostServiceProvider interface {
	CreatePost(ownerID int64, title, content string) (models.Post, error)
	ListPosts(ownerID int64, search, orderBy string) ([]models.Post, error)
	GetPost(ownerID, postID int64) (models.Post, error)
	UpdatePost(ownerID, postID int64, title, content *string) (models.Post, error)
	DeletePost(ownerID, postID int64) error
}

// PostService provides business logic for post management.
type PostService struct {
	db *sql.DB
}

// NewPostService creates a new PostService.
func NewPostService(db *sql.DB) *PostService {
	return &PostService{db: db}
}

// sortColumns is the allow-list of order_by values. Anything else falls
// back to created_at, matching the permissive ordering policy.
var sortColumns = map[string]string{
	"id":         "id",
	"title":      "title",
	"content":    "content",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// CreatePost persists a new post owned by ownerID.
func (s *PostService) CreatePost(ownerID int64, title, content string) (models.Post, error) {
	if title == "" {
		return models.Post{}, fmt.Errorf("%w: title is required", models.ErrInvalidInput)
	}

	now := time.Now().UTC()
	stmt, err := s.db.Prepare("INSERT INTO posts(title, content, user_id, created_at, updated_at) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return models.Post{}, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(title, content, ownerID, now, now)
	if err != nil {
		return models.Post{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Post{}, err
	}
	return s.GetPost(ownerID, id)
}

// ListPosts retrieves all posts owned by ownerID, newest first. A non-empty
// search term narrows the result to titles containing it, case-insensitively.
// orderBy names a post column to sort by descending; unknown names fall back
// to created_at. Ties break on id for a deterministic order.
func (s *PostService) ListPosts(ownerID int64, search, orderBy string) ([]models.Post, error) {
	column, ok := sortColumns[orderBy]
	if !ok {
		column = "created_at"
	}

	query := "SELECT id, title, content, user_id, created_at, updated_at FROM posts WHERE user_id = ?"
	args := []interface{}{ownerID}
	if search != "" {
		query += ` AND lower(title) LIKE ? ESCAPE '\'`
		args = append(args, "%"+escapeLike(strings.ToLower(search))+"%")
	}
	query += " ORDER BY " + column + " DESC, id DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.UserID, &post.CreatedAt, &post.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// GetPost retrieves a single post owned by ownerID. The ownership filter is
// part of the lookup predicate itself, so a foreign post is never observed
// to exist.
func (s *PostService) GetPost(ownerID, postID int64) (models.Post, error) {
	var post models.Post
	row := s.db.QueryRow(
		"SELECT id, title, content, user_id, created_at, updated_at FROM posts WHERE id = ? AND user_id = ?",
		postID, ownerID,
	)
	err := row.Scan(&post.ID, &post.Title, &post.Content, &post.UserID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, fmt.Errorf("post %d: %w", postID, models.ErrNotFound)
		}
		return models.Post{}, err
	}
	return post, nil
}

// UpdatePost changes the supplied fields of a post owned by ownerID; a nil
// field keeps its prior value. updated_at is refreshed on every successful
// update, even when the supplied values equal the current ones.
func (s *PostService) UpdatePost(ownerID, postID int64, title, content *string) (models.Post, error) {
	if title != nil && *title == "" {
		return models.Post{}, fmt.Errorf("%w: title cannot be empty", models.ErrInvalidInput)
	}

	res, err := s.db.Exec(
		"UPDATE posts SET title = COALESCE(?, title), content = COALESCE(?, content), updated_at = ? WHERE id = ? AND user_id = ?",
		title, content, time.Now().UTC(), postID, ownerID,
	)
	if err != nil {
		return models.Post{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Post{}, err
	}
	if affected == 0 {
		return models.Post{}, fmt.Errorf("post %d: %w", postID, models.ErrNotFound)
	}
	return s.GetPost(ownerID, postID)
}

// DeletePost removes a post owned by ownerID.
func (s *PostService) DeletePost(ownerID, postID int64) error {
	res, err := s.db.Exec("DELETE FROM posts WHERE id = ? AND user_id = ?", postID, ownerID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("post %d: %w", postID, models.ErrNotFound)
	}
	return nil
}

// escapeLike escapes LIKE wildcards so the search term is matched literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
