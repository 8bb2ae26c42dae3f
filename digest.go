package refdeck

import "context"

// DigestStatus reports the server's digest scheduler configuration.
type DigestStatus struct {
	EmailConfigured  bool   `json:"email_configured"`
	SchedulerRunning bool   `json:"scheduler_running"`
	TotalArticles    int    `json:"total_articles"`
	TotalQuotes      int    `json:"total_quotes"`
	Schedule         string `json:"schedule"`
}

// DigestPreview shows what the next curator digest would contain without
// sending it. Message is set instead of Subject when no digest can be built.
type DigestPreview struct {
	Subject       string `json:"subject"`
	Theme         string `json:"theme"`
	AnchorArticle string `json:"anchor_article"`
	RecentCount   int    `json:"recent_count"`
	TotalQuotes   int    `json:"total_quotes"`
	HTMLPreview   string `json:"html_preview"`
	Message       string `json:"message"`
}

// DigestReceipt confirms a manually triggered digest send.
type DigestReceipt struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	Theme         string `json:"theme"`
	AnchorArticle string `json:"anchor_article"`
	EmailID       string `json:"email_id"`
}

// DigestService represents the server-side curator digest.
type DigestService interface {
	// DigestStatus reports digest configuration and content counts.
	DigestStatus(ctx context.Context) (*DigestStatus, error)

	// PreviewDigest builds the next digest without sending it.
	PreviewDigest(ctx context.Context) (*DigestPreview, error)

	// SendDigest triggers a digest email immediately.
	// Returns EINVALID if email is not configured or there is not enough
	// content for a digest.
	SendDigest(ctx context.Context) (*DigestReceipt, error)
}
