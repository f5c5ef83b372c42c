// Package service provides the business logic layer for the sliding
// puzzle.
//
// The service package implements:
//   - Multi-session puzzle management
//   - Move processing with win detection
//   - High-score recording on wins
//   - Session lifecycle management
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game
// operations. SessionManager handles session creation, retrieval, and
// lifecycle.
//
// Architecture:
//
// The service layer sits between the transports (CLI, HTTP, WebSocket,
// MCP) and the game engine, providing session isolation and orchestration.
// Each session owns an independent engine instance, so several puzzles of
// different sizes can run concurrently.
package service
