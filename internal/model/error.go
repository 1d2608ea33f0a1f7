package model

import "errors"

// session errors
var ErrorMissingCredential = errors.New("no session token supplied")
var ErrorInvalidSignature = errors.New("invalid session token")
var ErrorSessionExpired = errors.New("session expired")
var ErrorIdentityNotFound = errors.New("session identity not found")

// account errors
var ErrorInvalidUsernameOrPassword = errors.New("invalid username or password")
var ErrorUserNotFound = errors.New("user not found")
var ErrorDuplicateEmail = errors.New("email already registered")
var ErrorMissingFields = errors.New("all fields are required")
var ErrorPasswordTooShort = errors.New("password must be at least 6 characters")

// friend graph errors
var ErrorSelfRequest = errors.New("cannot send a friend request to yourself")
var ErrorEdgeExists = errors.New("a friend request already exists between these users")
var ErrorEdgeNotFound = errors.New("friend request not found")
var ErrorNotRecipient = errors.New("only the recipient can accept a friend request")
var ErrorAlreadyAccepted = errors.New("friend request already accepted")

// chat bridge errors
var ErrorProviderUnavailable = errors.New("chat provider unavailable")
var ErrorBridgeMisconfigured = errors.New("chat provider key or secret missing")
