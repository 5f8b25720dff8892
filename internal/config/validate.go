package config

import (
	"errors"
	"fmt"
	"regexp"
)

var clockPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// Validate ensures the configuration is usable. It is the only error
// category allowed to stop a run, and it fires before any network or disk
// side effects.
func (c *Config) Validate() error {
	if err := c.validateVenues(); err != nil {
		return err
	}
	if err := c.validateNotifications(); err != nil {
		return err
	}
	if err := c.validateCaches(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateVenues() error {
	enabled := 0
	for id, venue := range c.Venues {
		if !venue.Enabled {
			continue
		}
		enabled++
		if venue.Name == "" {
			return fmt.Errorf("venue %q is enabled but has no name", id)
		}
		if venue.URL == "" {
			return fmt.Errorf("venue %q is enabled but has no url", id)
		}
	}
	if enabled == 0 {
		return errors.New("at least one venue must be enabled")
	}
	return nil
}

func (c *Config) validateNotifications() error {
	if !c.Notifications.Enabled {
		return nil
	}

	if !clockPattern.MatchString(c.Notifications.Time) {
		return fmt.Errorf("invalid notification time %q: must be HH:MM (e.g. 09:00)", c.Notifications.Time)
	}

	for i, alarm := range c.Notifications.Alarms {
		if alarm.Time != "" && !clockPattern.MatchString(alarm.Time) {
			return fmt.Errorf("invalid alarm time %q: must be HH:MM (e.g. 18:00)", alarm.Time)
		}
		if alarm.DaysBefore == nil && alarm.HoursBefore == nil {
			return fmt.Errorf("alarm %d must set either days_before or hours_before", i+1)
		}
	}
	return nil
}

func (c *Config) validateCaches() error {
	if c.Caches.DetailExpiryDays < 1 {
		return fmt.Errorf("detail_expiry_days must be at least 1, got %d", c.Caches.DetailExpiryDays)
	}
	if c.Caches.EnrichExpiryDays < 1 {
		return fmt.Errorf("enrich_expiry_days must be at least 1, got %d", c.Caches.EnrichExpiryDays)
	}
	return nil
}
