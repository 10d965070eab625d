package utils

import "github.com/google/uuid"

// UUIDGenerator produces opaque unique identifiers for newly created rows.
// Identifiers are time-ordered UUIDv7 values, falling back to random UUIDv4
// if v7 generation fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
