// Package model defines the row types stored in and returned from the
// database: topics, articles, comments, and users.
//
// These are plain data carriers. All behavior (queries, validation,
// existence checks) lives in the repository and service layers.
package model

import "time"

// Topic is a named discussion category. Topics are seeded externally and
// read-only through this API; Slug is the primary key.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// Article is a posted piece of content belonging to a topic.
//
// Votes is the only mutable field and may go negative; there is no floor.
type Article struct {
	ArticleID     int       `json:"article_id"`
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Topic         string    `json:"topic"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
}

// ArticleSummary is the listing projection of an Article: it omits the body
// and carries a derived comment count. CommentCount is never stored; it is
// computed per query from the comments table.
type ArticleSummary struct {
	ArticleID     int       `json:"article_id"`
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// Comment is a reply attached to an article. Comments are created and
// deleted through the API but never updated.
type Comment struct {
	CommentID int       `json:"comment_id"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// User is an account identified by username, referenced as author by
// articles and comments. Read-only through this API.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
