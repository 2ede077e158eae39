package handler

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"job-dashboard/constant"
	"job-dashboard/dto"
	"job-dashboard/service"
	"strconv"
	"strings"
)

// ClaimHeader carries the decoded user claim injected by the gateway.
const ClaimHeader = "X-User-Claim"

const actorKey = "actor"

// Authenticate trusts the gateway's claim header verbatim. The header is
// JSON, optionally base64url encoded.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(ClaimHeader))
		if raw == "" {
			_ = c.Error(service.ErrUnauthenticated)
			c.Abort()
			return
		}

		actor, err := ParseClaim(raw)
		if err != nil {
			_ = c.Error(fmt.Errorf("%w: %v", service.ErrUnauthenticated, err))
			c.Abort()
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

func ParseClaim(raw string) (dto.Actor, error) {
	payload := []byte(raw)
	if !strings.HasPrefix(raw, "{") {
		decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(raw, "="))
		if err != nil {
			return dto.Actor{}, errors.New("claim is neither JSON nor base64url")
		}
		payload = decoded
	}

	var actor dto.Actor
	if err := json.Unmarshal(payload, &actor); err != nil {
		return dto.Actor{}, fmt.Errorf("malformed claim: %w", err)
	}
	if actor.ID == 0 {
		return dto.Actor{}, errors.New("claim has no user id")
	}
	if actor.Role == "" {
		actor.Role = constant.RoleStaff
	}
	return actor, nil
}

func actorFrom(c *gin.Context) dto.Actor {
	actor, _ := c.Get(actorKey)
	value, _ := actor.(dto.Actor)
	return value
}

// pathId parses a positive numeric path parameter.
func pathId(c *gin.Context, name string) (uint, error) {
	value := c.Param(name)
	id, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", service.ErrInvalidInput, name, value)
	}
	return uint(id), nil
}

func bindError(err error) error {
	return fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
}
