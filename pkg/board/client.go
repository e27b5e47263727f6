// Package board synchronizes task state with the external review board:
// an outbound pusher mirrors status changes to board pages, an inbound
// poller turns human board edits into task transitions. All board API
// traffic flows through one shared token bucket holding the 3 req/s cap.
package board

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jomei/notionapi"
	"golang.org/x/time/rate"
)

// Page is the board-side view of one task, reduced to the properties the
// core consumes.
type Page struct {
	ID             string
	Title          string
	ChannelID      string
	Topic          string
	StoryDirection string
	Status         string
	Priority       string
	Feedback       string
	Reviewer       string
	LastEdited     time.Time
}

// API is the board surface the sync loops depend on. Tests substitute a
// fake; production uses Client.
type API interface {
	QueryPages(ctx context.Context, databaseID string) ([]Page, error)
	UpdateStatus(ctx context.Context, pageID, boardStatus string) error
}

// Client wraps the board HTTP API behind the shared rate limiter.
type Client struct {
	api     *notionapi.Client
	limiter *rate.Limiter
}

// NewClient creates a board client. Burst 1 keeps the call rate under the
// cap in every 1-second window, not just on average.
func NewClient(token string, requestsPerSecond float64) *Client {
	return &Client{
		api:     notionapi.NewClient(notionapi.Token(token)),
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// QueryPages lists every page in a board database, following pagination.
// Each page of results costs one rate-limited API call.
func (c *Client) QueryPages(ctx context.Context, databaseID string) ([]Page, error) {
	var pages []Page
	var cursor notionapi.Cursor

	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := c.api.Database.Query(ctx, notionapi.DatabaseID(databaseID), &notionapi.DatabaseQueryRequest{
			StartCursor: cursor,
			PageSize:    100,
		})
		if err != nil {
			return nil, fmt.Errorf("querying board database %s: %w", databaseID, err)
		}

		for i := range resp.Results {
			pages = append(pages, fromNotionPage(&resp.Results[i]))
		}

		if !resp.HasMore {
			return pages, nil
		}
		cursor = resp.NextCursor
	}
}

// UpdateStatus writes the Status select of one page. One API call.
func (c *Client) UpdateStatus(ctx context.Context, pageID, boardStatus string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err := c.api.Page.Update(ctx, notionapi.PageID(pageID), &notionapi.PageUpdateRequest{
		Properties: notionapi.Properties{
			"Status": notionapi.SelectProperty{
				Select: notionapi.Option{Name: boardStatus},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("updating board page %s: %w", pageID, err)
	}
	return nil
}

func fromNotionPage(p *notionapi.Page) Page {
	page := Page{
		ID:         string(p.ID),
		LastEdited: p.LastEditedTime,
	}
	for name, prop := range p.Properties {
		switch v := prop.(type) {
		case *notionapi.TitleProperty:
			page.Title = plainText(v.Title)
		case *notionapi.SelectProperty:
			switch name {
			case "Status":
				page.Status = v.Select.Name
			case "Priority":
				page.Priority = v.Select.Name
			case "Channel":
				page.ChannelID = v.Select.Name
			}
		case *notionapi.RichTextProperty:
			switch name {
			case "Topic":
				page.Topic = plainText(v.RichText)
			case "Story Direction":
				page.StoryDirection = plainText(v.RichText)
			case "Feedback":
				page.Feedback = plainText(v.RichText)
			case "Reviewer":
				page.Reviewer = plainText(v.RichText)
			}
		case *notionapi.PeopleProperty:
			if name == "Reviewer" && len(v.People) > 0 {
				page.Reviewer = v.People[0].Name
			}
		}
	}
	return page
}

func plainText(rich []notionapi.RichText) string {
	var b strings.Builder
	for _, r := range rich {
		b.WriteString(r.PlainText)
	}
	return strings.TrimSpace(b.String())
}
