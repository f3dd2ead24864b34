package brand

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Platforms the profile editor offers. Other keys are stored as given.
var KnownPlatforms = []string{"facebook", "instagram", "linkedin", "pinterest", "tiktok", "twitter", "youtube"}

// SocialLinks maps a platform name to a profile URL.
type SocialLinks map[string]string

// NewSocialLinks trims keys and values, drops empty entries and rejects
// values that are not absolute http(s) URLs.
func NewSocialLinks(raw map[string]string) (SocialLinks, error) {
	links := make(SocialLinks, len(raw))
	for platform, link := range raw {
		platform = strings.ToLower(strings.TrimSpace(platform))
		link = strings.TrimSpace(link)
		if platform == "" || link == "" {
			continue
		}
		u, err := url.Parse(link)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("social link for %s must be an absolute URL", platform)
		}
		links[platform] = link
	}
	return links, nil
}

func IsKnownPlatform(platform string) bool {
	for _, p := range KnownPlatforms {
		if p == platform {
			return true
		}
	}
	return false
}

// Platforms returns the populated platform names in sorted order.
func (s SocialLinks) Platforms() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func (s SocialLinks) Clone() SocialLinks {
	out := make(SocialLinks, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
