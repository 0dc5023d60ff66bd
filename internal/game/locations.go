package game

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MassBabyGeek/GeoGuess-backend/internal/apperrors"
	model "github.com/MassBabyGeek/GeoGuess-backend/internal/models"
)

// Catalog est la liste ordonnée et immuable des lieux jouables.
// L'ordre compte : RoundClock fait tourner l'index modulo Len().
type Catalog struct {
	locations []model.Location
}

// defaultLocations est le catalogue embarqué, utilisé quand aucun fichier
// n'est fourni via LOCATIONS_FILE.
var defaultLocations = []model.Location{
	{Position: model.LatLng{Lat: 48.858370, Lng: 2.294481}, Answer: "Eiffel Tower", Hint: "An iron lady watches over a river full of bridges"},
	{Position: model.LatLng{Lat: -13.163141, Lng: -72.544963}, Answer: "Machu Picchu", Hint: "A lost city in the clouds, reached by a winding mountain trail"},
	{Position: model.LatLng{Lat: 29.979235, Lng: 31.134202}, Answer: "Great Pyramid of Giza", Hint: "The last survivor of seven ancient wonders"},
	{Position: model.LatLng{Lat: 40.689247, Lng: -74.044502}, Answer: "Statue of Liberty", Hint: "A gift holding a torch at the mouth of a harbor"},
	{Position: model.LatLng{Lat: 27.175015, Lng: 78.042155}, Answer: "Taj Mahal", Hint: "A white marble love letter beside a sacred river"},
	{Position: model.LatLng{Lat: -33.856784, Lng: 151.215297}, Answer: "Sydney Opera House", Hint: "White sails that never leave the quay"},
	{Position: model.LatLng{Lat: 41.890210, Lng: 12.492231}, Answer: "Colosseum", Hint: "An arena where emperors turned thumbs"},
	{Position: model.LatLng{Lat: 35.658581, Lng: 139.745438}, Answer: "Tokyo Tower", Hint: "A red and white lattice above a sprawling megacity"},
	{Position: model.LatLng{Lat: 51.500729, Lng: -0.124625}, Answer: "Big Ben", Hint: "A clock that names itself after its bell"},
	{Position: model.LatLng{Lat: -22.951916, Lng: -43.210487}, Answer: "Christ the Redeemer", Hint: "Open arms on a peak above a carnival city"},
	{Position: model.LatLng{Lat: 37.819929, Lng: -122.478255}, Answer: "Golden Gate Bridge", Hint: "A bridge that is not golden but international orange"},
	{Position: model.LatLng{Lat: 55.752023, Lng: 37.617499}, Answer: "Red Square", Hint: "Onion domes beside a fortified wall"},
	{Position: model.LatLng{Lat: 43.722952, Lng: 10.396597}, Answer: "Leaning Tower of Pisa", Hint: "A bell tower famous for a construction mistake"},
	{Position: model.LatLng{Lat: 36.106965, Lng: -112.112997}, Answer: "Grand Canyon", Hint: "A river spent six million years carving this"},
}

// DefaultCatalog retourne le catalogue embarqué.
func DefaultCatalog() *Catalog {
	return &Catalog{locations: defaultLocations}
}

// LoadCatalog lit un catalogue depuis un fichier JSON ([]Location).
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read locations file: %w", err)
	}
	var locations []model.Location
	if err := json.Unmarshal(raw, &locations); err != nil {
		return nil, fmt.Errorf("could not parse locations file: %w", err)
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("locations file %s is empty", path)
	}
	return &Catalog{locations: locations}, nil
}

// Len retourne le nombre de lieux du catalogue.
func (c *Catalog) Len() int {
	return len(c.locations)
}

// Resolve retourne le lieu à l'index donné.
func (c *Catalog) Resolve(index int) (model.Location, error) {
	if index < 0 || index >= len(c.locations) {
		return model.Location{}, &apperrors.NotFoundError{
			Resource: fmt.Sprintf("location at index %d", index),
		}
	}
	return c.locations[index], nil
}
