// Package kv expose le store clé-valeur partagé par tous les composants.
// Les valeurs sont encodées en JSON ; une clé = une écriture atomique,
// aucune garantie entre deux clés (last-write-wins par clé).
package kv

import "context"

// Store est l'unique ressource mutable partagée du backend. Chaque composant
// le reçoit en dépendance explicite, jamais via un état global.
type Store interface {
	// Get retourne la valeur brute et false si la clé est absente.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set encode value en JSON et écrase la clé.
	Set(ctx context.Context, key string, value interface{}) error
	// Delete supprime la clé. Pas une erreur si elle n'existe pas.
	Delete(ctx context.Context, key string) error
	// Keys liste les clés commençant par prefix, triées.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
