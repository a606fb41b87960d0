package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	authdomain "pinflow-backend/internal/auth/domain"
	authrepo "pinflow-backend/internal/auth/repository"
	pindomain "pinflow-backend/internal/pinterest/domain"
	pinrepo "pinflow-backend/internal/pinterest/repository"
	postdomain "pinflow-backend/internal/post/domain"
	postrepo "pinflow-backend/internal/post/repository"
	"pinflow-backend/pkg/config"
)

// PostResult is the per-post outcome of one publish invocation
type PostResult struct {
	ID          string `json:"id"`
	Status      string `json:"status"` // "success" or "error"
	Message     string `json:"message"`
	PinterestID string `json:"pinterest_id,omitempty"`
}

// RunSummary is the outcome of one publish invocation
type RunSummary struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Results []PostResult `json:"results"`
}

// Publisher is the scheduled batch job: it finds due posts and publishes
// each one independently. One post's failure never aborts the batch;
// only a failed due-posts query fails the invocation itself.
type Publisher struct {
	postRepo postrepo.PostRepository
	userRepo authrepo.UserRepository
	logRepo  pinrepo.APICallLogRepository
	client   APIClient
	resolver *BoardResolver

	rateLimitWindow time.Duration
	rateLimitMax    int
}

// NewPublisher creates a Publisher
func NewPublisher(
	postRepo postrepo.PostRepository,
	userRepo authrepo.UserRepository,
	logRepo pinrepo.APICallLogRepository,
	client APIClient,
	resolver *BoardResolver,
	cfg *config.Config,
) *Publisher {
	return &Publisher{
		postRepo:        postRepo,
		userRepo:        userRepo,
		logRepo:         logRepo,
		client:          client,
		resolver:        resolver,
		rateLimitWindow: cfg.PinRateLimitWindow,
		rateLimitMax:    cfg.PinRateLimitMax,
	}
}

// Run executes one publish invocation. The returned error is non-nil
// only when the due-posts query itself fails.
func (p *Publisher) Run(ctx context.Context, now time.Time) (*RunSummary, error) {
	posts, err := p.postRepo.FindDuePosts(now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pindomain.ErrDueQuery, err)
	}

	log.Printf("[Publisher] Found %d posts to publish", len(posts))

	results := make([]PostResult, 0, len(posts))
	succeeded := 0

	for _, post := range posts {
		result, attempted := p.publishOne(ctx, now, post)
		if !attempted {
			continue
		}
		if result.Status == "success" {
			succeeded++
		}
		results = append(results, result)
	}

	return &RunSummary{
		Success: true,
		Message: fmt.Sprintf("Published %d of %d posts", succeeded, len(results)),
		Results: results,
	}, nil
}

// publishOne processes a single due post. Failures are converted to an
// error result here; nothing escapes to abort the loop. attempted is
// false when the claim was lost to a concurrent invocation.
func (p *Publisher) publishOne(ctx context.Context, now time.Time, post *postdomain.Post) (PostResult, bool) {
	user, err := p.userRepo.FindByID(post.UserID)
	if err != nil {
		return p.errorResult(post, fmt.Sprintf("failed to load post owner: %v", err)), true
	}
	if user == nil || !user.PinterestConnected() {
		// No API call and no audit row for unconnected owners; status
		// stays scheduled so connecting later picks the post up again.
		msg := pindomain.ErrNotConnected.Error()
		if err := p.postRepo.SetPublishError(post.ID, msg); err != nil {
			log.Printf("[Publisher] Failed to record publish error for post %s: %v", post.ID, err)
		}
		return PostResult{ID: post.ID, Status: "error", Message: msg}, true
	}

	claimed, err := p.postRepo.ClaimForPublishing(post.ID)
	if err != nil {
		return p.errorResult(post, fmt.Sprintf("failed to claim post: %v", err)), true
	}
	if !claimed {
		log.Printf("[Publisher] Post %s already claimed by another invocation, skipping", post.ID)
		return PostResult{}, false
	}

	pinID, err := p.createPin(ctx, now, user, post)
	if err != nil {
		if releaseErr := p.postRepo.ReleaseWithError(post.ID, err.Error()); releaseErr != nil {
			log.Printf("[Publisher] Failed to release post %s: %v", post.ID, releaseErr)
		}
		return PostResult{ID: post.ID, Status: "error", Message: err.Error()}, true
	}

	if err := p.postRepo.MarkPublished(post.ID, pinID, now); err != nil {
		// The pin exists; surface the bookkeeping failure rather than
		// re-queue the post for a duplicate publish.
		log.Printf("[Publisher] Pin %s created but post %s not marked published: %v", pinID, post.ID, err)
		return PostResult{ID: post.ID, Status: "error", Message: fmt.Sprintf("pin created but post update failed: %v", err), PinterestID: pinID}, true
	}

	log.Printf("[Publisher] Published post %s as pin %s", post.ID, pinID)
	return PostResult{
		ID:          post.ID,
		Status:      "success",
		Message:     "Post published successfully",
		PinterestID: pinID,
	}, true
}

// createPin drives token refresh, the rate gate, board resolution and
// pin creation for a claimed post
func (p *Publisher) createPin(ctx context.Context, now time.Time, user *authdomain.User, post *postdomain.Post) (string, error) {
	accessToken := user.PinterestAccessToken

	if user.PinterestTokenExpired(now) {
		tokens, err := p.client.RefreshAccessToken(ctx, user.ID, user.PinterestRefreshToken)
		if err != nil {
			return "", err
		}
		expiresAt := tokens.ExpiresAt(now)
		// Persist before use: a crash after this point leaves a valid
		// credential and an unprocessed post, which is safe to retry.
		if err := p.userRepo.UpdatePinterestTokens(user.ID, tokens.AccessToken, tokens.RefreshToken, expiresAt); err != nil {
			return "", fmt.Errorf("failed to persist refreshed credential: %w", err)
		}
		user.PinterestAccessToken = tokens.AccessToken
		user.PinterestRefreshToken = tokens.RefreshToken
		user.PinterestTokenExpiresAt = &expiresAt
		accessToken = tokens.AccessToken
	}

	if p.rateLimitMax > 0 {
		count, err := p.logRepo.CountPinCreations(user.ID, now.Add(-p.rateLimitWindow))
		if err != nil {
			return "", fmt.Errorf("rate limit check failed: %w", err)
		}
		if count >= int64(p.rateLimitMax) {
			return "", fmt.Errorf("%w: %d pins in the last %s", pindomain.ErrRateLimitExceeded, count, p.rateLimitWindow)
		}
	}

	boardID, err := p.resolver.Resolve(ctx, user, accessToken)
	if err != nil {
		return "", err
	}

	return p.client.CreatePin(ctx, user.ID, accessToken, boardID, post)
}

func (p *Publisher) errorResult(post *postdomain.Post, message string) PostResult {
	if err := p.postRepo.SetPublishError(post.ID, message); err != nil {
		log.Printf("[Publisher] Failed to record publish error for post %s: %v", post.ID, err)
	}
	return PostResult{ID: post.ID, Status: "error", Message: message}
}

// IsDueQueryFailure reports whether a Run error was the batch-level
// due-posts query failing
func IsDueQueryFailure(err error) bool {
	return errors.Is(err, pindomain.ErrDueQuery)
}
