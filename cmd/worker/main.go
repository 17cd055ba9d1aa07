// The rollup scheduler. Runs the bulk daily rollup over the admin API on a
// cron schedule, for today and yesterday, and emails operators when a batch
// reports failures.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/kaanx03/NutriTrack-sub001/services"
	"github.com/kaanx03/NutriTrack-sub001/utils"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type apiClient struct {
	baseURL string
	creds   *utils.CredentialStore
	http    *http.Client
}

func (a *apiClient) runRollup(date string) (services.BatchResult, error) {
	var res services.BatchResult

	creds, err := a.creds.Load()
	if err != nil {
		return res, err
	}
	if creds == nil || creds.Token == "" {
		return res, fmt.Errorf("no service credentials; set SERVICE_TOKEN")
	}
	if !creds.ExpiresAt.IsZero() && time.Now().After(creds.ExpiresAt) {
		_ = a.creds.Clear()
		return res, fmt.Errorf("service credentials expired")
	}

	body, _ := json.Marshal(map[string]string{"date": date})
	req, err := http.NewRequest(http.MethodPost, a.baseURL+"/admin/rollup/run", bytes.NewReader(body))
	if err != nil {
		return res, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+creds.Token)

	resp, err := a.http.Do(req)
	if err != nil {
		return res, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return res, fmt.Errorf("rollup API returned %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return res, err
	}
	return res, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, relying on environment")
	}

	credPath := os.Getenv("SERVICE_TOKEN_FILE")
	if credPath == "" {
		credPath = "./tokens/service_token.json"
	}
	store, err := utils.NewCredentialStore(credPath)
	if err != nil {
		logrus.WithError(err).Fatal("credential store init failed")
	}

	// Bootstrap the store from the environment on first run.
	if creds, err := store.Load(); err != nil {
		logrus.WithError(err).Fatal("credential load failed")
	} else if creds == nil {
		token := os.Getenv("SERVICE_TOKEN")
		if token == "" {
			logrus.Fatal("SERVICE_TOKEN not set and no stored credentials")
		}
		if err := store.Save(&utils.ServiceCredentials{Token: token}); err != nil {
			logrus.WithError(err).Fatal("credential save failed")
		}
	}

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	client := &apiClient{
		baseURL: baseURL,
		creds:   store,
		http:    &http.Client{Timeout: 10 * time.Minute},
	}

	var mailer *utils.Mailer
	opsEmail := os.Getenv("OPS_ALERT_EMAIL")
	if opsEmail != "" {
		mailer, err = utils.NewMailer()
		if err != nil {
			logrus.WithError(err).Warn("mailer unavailable, alerts will be log-only")
			mailer = nil
		}
	}

	schedule := os.Getenv("WORKER_CRON")
	if schedule == "" {
		schedule = "0 3 * * *"
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { runScheduledRollups(client, mailer, opsEmail) }); err != nil {
		logrus.WithError(err).Fatal("invalid WORKER_CRON expression")
	}

	logrus.WithField("schedule", schedule).Info("rollup worker started")
	c.Run()
}

// runScheduledRollups triggers the bulk rollup for today and yesterday, so
// entries logged around midnight in client timezones still land.
func runScheduledRollups(client *apiClient, mailer *utils.Mailer, opsEmail string) {
	for _, offset := range []int{0, 1} {
		date := time.Now().AddDate(0, 0, -offset).Format("2006-01-02")
		log := logrus.WithFields(logrus.Fields{"task": "worker.rollup", "date": date})

		res, err := client.runRollup(date)
		if err != nil {
			log.WithError(err).Error("bulk rollup call failed")
			if mailer != nil {
				_ = mailer.SendRollupAlert(opsEmail, date, 0, 0, "The rollup API call itself failed: "+err.Error())
			}
			continue
		}

		log.WithFields(logrus.Fields{"updated": res.UpdateCount, "failed": res.ErrorCount}).Info("bulk rollup done")
		if res.ErrorCount > 0 && mailer != nil {
			_ = mailer.SendRollupAlert(opsEmail, date, res.UpdateCount, res.ErrorCount,
				"See the API server logs for per-user errors.")
		}
	}
}
