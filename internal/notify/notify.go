// Package notify diffuse les notifications de début de manche vers les
// identités abonnées, via un service de push compatible Expo. Chaque envoi
// est isolé : l'échec d'un destinataire n'affecte jamais les autres.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/MassBabyGeek/GeoGuess-backend/internal/apperrors"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/kv"
	model "github.com/MassBabyGeek/GeoGuess-backend/internal/models"
	"github.com/MassBabyGeek/GeoGuess-backend/internal/utils"
	"github.com/google/uuid"
)

const subscriptionPrefix = "notification:"

// Outcome classe le résultat d'un envoi individuel.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeRateLimit Outcome = "rate_limit"
	OutcomeError     Outcome = "error"
	OutcomeNoToken   Outcome = "no_token"
)

// Fanout gère les abonnements et la diffusion. Le client HTTP porte le
// timeout borné exigé pour chaque envoi.
type Fanout struct {
	store  kv.Store
	client *http.Client
}

func New(store kv.Store, timeout time.Duration) *Fanout {
	return &Fanout{
		store:  store,
		client: &http.Client{Timeout: timeout},
	}
}

// Subscribe enregistre (ou écrase) l'abonnement d'une identité.
func (f *Fanout) Subscribe(ctx context.Context, record model.SubscriptionRecord) error {
	return f.store.Set(ctx, subscriptionPrefix+record.Identity, record)
}

// Unsubscribe supprime l'abonnement. NotFoundError s'il n'existe pas.
func (f *Fanout) Unsubscribe(ctx context.Context, identity string) error {
	_, ok, err := f.store.Get(ctx, subscriptionPrefix+identity)
	if err != nil {
		return err
	}
	if !ok {
		return &apperrors.NotFoundError{Resource: "subscription for " + identity}
	}
	return f.store.Delete(ctx, subscriptionPrefix+identity)
}

// Subscribers énumère toutes les identités actuellement abonnées.
func (f *Fanout) Subscribers(ctx context.Context) ([]string, error) {
	keys, err := f.store.Keys(ctx, subscriptionPrefix)
	if err != nil {
		return nil, err
	}
	identities := make([]string, 0, len(keys))
	for _, k := range keys {
		identities = append(identities, strings.TrimPrefix(k, subscriptionPrefix))
	}
	return identities, nil
}

// pushMessage est le corps envoyé au deliveryTarget. L'id est régénéré à
// chaque appel pour que le récepteur puisse dédupliquer.
type pushMessage struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
	ID    string `json:"id"`
}

// pushReceipt est la réponse attendue du service de push (format Expo).
type pushReceipt struct {
	Data struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Details struct {
			Error string `json:"error"`
		} `json:"details"`
	} `json:"data"`
}

// Dispatch envoie une notification à une identité et classe le résultat :
// pas d'abonnement → no_token, réponse illisible ou transport en échec →
// error, token limité en débit → rate_limit, sinon → success.
func (f *Fanout) Dispatch(ctx context.Context, identity, title, body string) Outcome {
	raw, ok, err := f.store.Get(ctx, subscriptionPrefix+identity)
	if err != nil {
		utils.LogError("fanout: could not load subscription for %s: %v", identity, err)
		return OutcomeError
	}
	if !ok {
		return OutcomeNoToken
	}

	var record model.SubscriptionRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		utils.LogError("fanout: corrupt subscription for %s: %v", identity, err)
		return OutcomeError
	}

	payload, err := json.Marshal(pushMessage{
		To:    record.DeliveryToken,
		Title: title,
		Body:  body,
		ID:    uuid.NewString(),
	})
	if err != nil {
		return OutcomeError
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		record.DeliveryTarget, bytes.NewReader(payload))
	if err != nil {
		return OutcomeError
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		// Cible injoignable ou timeout : même classement.
		utils.LogError("fanout: %v", &apperrors.DeliveryError{Identity: identity, Err: err})
		return OutcomeError
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return OutcomeRateLimit
	}

	var receipt pushReceipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return OutcomeError
	}

	switch {
	case receipt.Data.Details.Error == "MessageRateExceeded":
		return OutcomeRateLimit
	case receipt.Data.Status == "ok":
		return OutcomeSuccess
	default:
		return OutcomeError
	}
}

// FanoutAll envoie à tous les abonnés en parallèle et agrège les issues.
// Aucun retry dans un même fanout ; aucun destinataire ne peut bloquer ou
// annuler les autres.
func (f *Fanout) FanoutAll(ctx context.Context, title, body string) (model.FanoutResult, error) {
	identities, err := f.Subscribers(ctx)
	if err != nil {
		return model.FanoutResult{}, err
	}

	result := model.FanoutResult{TotalUsers: len(identities)}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, identity := range identities {
		wg.Add(1)
		go func(identity string) {
			defer wg.Done()
			outcome := f.Dispatch(ctx, identity, title, body)

			mu.Lock()
			defer mu.Unlock()
			switch outcome {
			case OutcomeSuccess:
				result.SuccessCount++
			case OutcomeRateLimit:
				result.RateLimitedCount++
			case OutcomeNoToken:
				result.NoTokenCount++
			default:
				result.FailedCount++
			}
		}(identity)
	}
	wg.Wait()

	return result, nil
}
