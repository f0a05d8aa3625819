// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

// Package sec provides the cryptographic primitives behind the session layer.
//
// # Architecture
//
// Security-sensitive code (password hashing, ticket signing) is isolated here
// so the session manager and credential validators stay free of crypto
// details. The ticket service is injected where needed via small interfaces.
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TicketClaims is the payload embedded in a signed session ticket.
//
// # Why a signed ticket?
//
// The dashboard tracks a single process-wide session, but the browser that
// established it should be the only one treated as authenticated. The ticket
// binds the cookie to the identity held in the session slot without any
// per-request storage lookup.
type TicketClaims struct {
	jwt.RegisteredClaims

	// IdentityID is the id of the identity the ticket was issued for.
	IdentityID string `json:"uid"`
	// DisplayName is carried for log enrichment only.
	DisplayName string `json:"nam"`
}

// TicketService signs and verifies session tickets using HMAC-SHA256.
type TicketService struct {
	secret []byte
	issuer string
}

// NewTicketService creates a TicketService from the configured session secret.
func NewTicketService(secret, issuer string) (*TicketService, error) {
	if len(secret) < 16 {
		return nil, fmt.Errorf("sec: session secret must be at least 16 bytes")
	}
	return &TicketService{secret: []byte(secret), issuer: issuer}, nil
}

// Issue creates a signed session ticket for the given identity.
func (service *TicketService) Issue(identityID, displayName string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := TicketClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identityID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		IdentityID:  identityID,
		DisplayName: displayName,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedTicket, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign session ticket: %w", err)
	}

	return signedTicket, nil
}

// Verify checks the signature and validity of a session ticket string.
func (service *TicketService) Verify(ticket string) (*TicketClaims, error) {
	token, err := jwt.ParseWithClaims(ticket, &TicketClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid session ticket: %w", err)
	}

	claims, ok := token.Claims.(*TicketClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid session ticket claims")
	}

	return claims, nil
}
