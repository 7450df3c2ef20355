package service

import (
	"context"
	"strings"

	"github.com/gosimple/slug"

	"learnhub/internal/model"
)

// Broadcaster pushes events to connected dashboard clients.
type Broadcaster interface {
	Broadcast(event string, payload interface{})
}

// EventNotificationCreated is sent when a notification is published.
const EventNotificationCreated = "notification.created"

// NotificationHooks broadcast every created notification.
func NotificationHooks(b Broadcaster) Hooks[model.Notification] {
	return Hooks[model.Notification]{
		AfterCreate: func(_ context.Context, n *model.Notification) {
			if b != nil && n.Status == model.StatusActive {
				b.Broadcast(EventNotificationCreated, n)
			}
		},
	}
}

// CourseHooks derive the course slug from its title and keep the discount within the price.
func CourseHooks() Hooks[model.Course] {
	return Hooks[model.Course]{
		BeforeCreate: func(_ context.Context, c *model.Course) error {
			if c.Slug == "" {
				c.Slug = slug.Make(c.Title)
			}
			return nil
		},
		BeforeUpdate: func(_ context.Context, current *model.Course, changes map[string]interface{}) error {
			if title, ok := changes["title"].(string); ok {
				if _, explicit := changes["slug"]; !explicit {
					changes["slug"] = slug.Make(title)
				}
			}
			return checkCourse(current, changes)
		},
	}
}

// SeoURLHooks derive the slug from the meta title and normalise the path.
func SeoURLHooks() Hooks[model.SeoURL] {
	return Hooks[model.SeoURL]{
		BeforeCreate: func(_ context.Context, s *model.SeoURL) error {
			s.Path = normalisePath(s.Path)
			if s.Slug == "" {
				s.Slug = slug.Make(s.MetaTitle)
			}
			return nil
		},
		BeforeUpdate: func(_ context.Context, _ *model.SeoURL, changes map[string]interface{}) error {
			if p, ok := changes["path"].(string); ok {
				changes["path"] = normalisePath(p)
			}
			if title, ok := changes["meta_title"].(string); ok {
				if _, explicit := changes["slug"]; !explicit {
					changes["slug"] = slug.Make(title)
				}
			}
			return nil
		},
	}
}

// CouponHooks store coupon codes upper-cased and cap percentage values at 100.
func CouponHooks() Hooks[model.Coupon] {
	return Hooks[model.Coupon]{
		BeforeCreate: func(_ context.Context, c *model.Coupon) error {
			c.Code = strings.ToUpper(c.Code)
			return nil
		},
		BeforeUpdate: func(_ context.Context, current *model.Coupon, changes map[string]interface{}) error {
			if code, ok := changes["code"].(string); ok {
				changes["code"] = strings.ToUpper(code)
			}
			return checkCoupon(current, changes)
		},
	}
}

func normalisePath(p string) string {
	p = strings.TrimSpace(p)
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	return strings.ToLower(p)
}
