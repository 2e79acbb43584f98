package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type BanStatus string

const (
	BanStatusBanned    BanStatus = "banned"
	BanStatusNotBanned BanStatus = "not_banned"

	// BanStatusUnknown marks a degraded lookup. Eligibility treats it the
	// same as not banned: voting availability must not depend on the
	// identity source's uptime.
	BanStatusUnknown BanStatus = "unknown"
)

type VoterProfile struct {
	VoterID          string    `json:"voter_id"`
	AccountCreatedAt time.Time `json:"account_created_at"`
	Karma            int       `json:"karma"`
}

type IdentityService interface {
	GetProfile(voterID string) (*VoterProfile, error)
	GetBanStatus(voterID, community string) BanStatus
	IsModerator(voterID, community string) bool
}

type identityService struct {
	client  *http.Client
	baseURL string
}

func NewIdentityService(baseURL string) IdentityService {
	return &identityService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

func (s *identityService) GetProfile(voterID string) (*VoterProfile, error) {
	response, err := s.client.Get(fmt.Sprintf("%s/users/%s", s.baseURL, voterID))
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity service returned status %d", response.StatusCode)
	}

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	profile := new(VoterProfile)
	if err := json.Unmarshal(responseBody, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

type banStatusResponse struct {
	Banned bool `json:"banned"`
}

// GetBanStatus never fails: any lookup problem degrades to unknown.
func (s *identityService) GetBanStatus(voterID, community string) BanStatus {
	response, err := s.client.Get(fmt.Sprintf("%s/communities/%s/bans/%s", s.baseURL, community, voterID))
	if err != nil {
		return BanStatusUnknown
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return BanStatusUnknown
	}

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return BanStatusUnknown
	}

	responseData := new(banStatusResponse)
	if err := json.Unmarshal(responseBody, responseData); err != nil {
		return BanStatusUnknown
	}

	if responseData.Banned {
		return BanStatusBanned
	}
	return BanStatusNotBanned
}

type moderatorResponse struct {
	Moderator bool `json:"moderator"`
}

func (s *identityService) IsModerator(voterID, community string) bool {
	response, err := s.client.Get(fmt.Sprintf("%s/communities/%s/moderators/%s", s.baseURL, community, voterID))
	if err != nil {
		return false
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return false
	}

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return false
	}

	responseData := new(moderatorResponse)
	if err := json.Unmarshal(responseBody, responseData); err != nil {
		return false
	}

	return responseData.Moderator
}
