// Package apperrors définit les erreurs métier du backend.
// Les handlers les convertissent en statut HTTP au niveau de la frontière,
// le reste du code ne manipule que ces types.
package apperrors

import "fmt"

// ValidationError : entrée malformée ou manquante, rejetée avant tout accès au store.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// AuthorizationError : secret administrateur absent ou invalide.
type AuthorizationError struct {
	Msg string
}

func (e *AuthorizationError) Error() string { return e.Msg }

// NotFoundError : un index qui ne résout aucun lieu, un abonnement absent, etc.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// DuplicatePlayError : deuxième soumission dans la même manche. Résultat
// normal et attendu, distinct d'une erreur serveur.
type DuplicatePlayError struct {
	Identity string
}

func (e *DuplicatePlayError) Error() string {
	return fmt.Sprintf("identity %s already played this round", e.Identity)
}

// StorageError : store injoignable ou donnée illisible. Retryable côté client.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

func Storage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// DeliveryError : échec d'envoi pour un destinataire. Toujours isolée par
// destinataire pendant un fanout, jamais propagée au déclencheur.
type DeliveryError struct {
	Identity string
	Err      error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to %s: %v", e.Identity, e.Err)
}
func (e *DeliveryError) Unwrap() error { return e.Err }
