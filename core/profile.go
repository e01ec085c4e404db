package core

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	MaxBioLen       = 500
	MaxAvatarURLLen = 200
)

// ProfileForm contains the editable fields of a profile.
type ProfileForm struct {
	Bio       string
	AvatarURL string
}

func (f *ProfileForm) validate() *ValidationError {

	var v = &ValidationError{}

	f.Bio = strings.TrimSpace(f.Bio)
	f.AvatarURL = strings.TrimSpace(f.AvatarURL)

	if utf8.RuneCountInString(f.Bio) > MaxBioLen {
		v.Add("bio", tooLong(MaxBioLen, f.Bio))
	}

	if f.AvatarURL != "" {
		if utf8.RuneCountInString(f.AvatarURL) > MaxAvatarURLLen {
			v.Add("avatar_url", tooLong(MaxAvatarURLLen, f.AvatarURL))
		} else if u, err := url.Parse(f.AvatarURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			v.Add("avatar_url", "Enter a valid URL.")
		}
	}

	return v
}

// EditProfile replaces bio and avatar url of the profile of account.
func (c *CoreDB) EditProfile(ctx context.Context, account *Account, form *ProfileForm) (Result, error) {

	var result Result

	if v := form.validate(); !v.Empty() {
		result.Invalid(v)
		return result, nil
	}

	profile, err := c.GetProfile(ctx, account.ID)
	if err != nil {
		return Result{}, fmt.Errorf("getting profile of account %d: %w", account.ID, err)
	}

	profile.Bio = form.Bio
	profile.AvatarURL = form.AvatarURL
	profile.Updated = c.now()

	if err := c.UpdateProfile(ctx, profile); err != nil {
		return Result{}, fmt.Errorf("updating profile of account %d: %w", account.ID, err)
	}

	c.log().Infow("profile updated", "account_id", account.ID)

	result.Success("Profile updated.")
	return result, nil
}
