package config

import (
	"fmt"
	"strings"
)

// City maps a human readable city name to the identifiers each source expects
type City struct {
	Name         string
	HHAreaID     string
	SuperJobTown string
	aliases      []string
}

// DefaultCity is searched when no city is configured
const DefaultCity = "Москва"

var cities = []City{
	{Name: "Москва", HHAreaID: "1", SuperJobTown: "Москва", aliases: []string{"moscow", "msk", "мск"}},
	{Name: "Санкт-Петербург", HHAreaID: "2", SuperJobTown: "Санкт-Петербург", aliases: []string{"saint petersburg", "st petersburg", "spb", "спб", "питер"}},
	{Name: "Екатеринбург", HHAreaID: "3", SuperJobTown: "Екатеринбург", aliases: []string{"yekaterinburg", "ekaterinburg", "ekb"}},
	{Name: "Новосибирск", HHAreaID: "4", SuperJobTown: "Новосибирск", aliases: []string{"novosibirsk", "nsk"}},
	{Name: "Краснодар", HHAreaID: "53", SuperJobTown: "Краснодар", aliases: []string{"krasnodar"}},
	{Name: "Нижний Новгород", HHAreaID: "66", SuperJobTown: "Нижний Новгород", aliases: []string{"nizhny novgorod", "nn"}},
	{Name: "Ростов-на-Дону", HHAreaID: "76", SuperJobTown: "Ростов-на-Дону", aliases: []string{"rostov-on-don", "rostov"}},
	{Name: "Самара", HHAreaID: "78", SuperJobTown: "Самара", aliases: []string{"samara"}},
	{Name: "Казань", HHAreaID: "88", SuperJobTown: "Казань", aliases: []string{"kazan"}},
	{Name: "Челябинск", HHAreaID: "104", SuperJobTown: "Челябинск", aliases: []string{"chelyabinsk"}},
}

// ResolveCity finds a supported city by its Russian name or an English alias,
// ignoring case and surrounding blanks.
func ResolveCity(name string) (City, error) {
	key := normalizeCityName(name)
	if key == "" {
		key = normalizeCityName(DefaultCity)
	}

	for _, c := range cities {
		if normalizeCityName(c.Name) == key {
			return c, nil
		}
		for _, alias := range c.aliases {
			if alias == key {
				return c, nil
			}
		}
	}
	return City{}, fmt.Errorf("%w: unknown city %q", ErrConfig, name)
}

// CityNames lists the supported city names
func CityNames() []string {
	names := make([]string, 0, len(cities))
	for _, c := range cities {
		names = append(names, c.Name)
	}
	return names
}

func normalizeCityName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "ё", "е")
	name = strings.ReplaceAll(name, ".", "")
	return strings.Join(strings.Fields(name), " ")
}
