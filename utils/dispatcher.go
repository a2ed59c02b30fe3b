package utils

import (
	"log"
	"time"

	"ffa/config"

	"github.com/go-resty/resty/v2"
)

// PipelineJob is the work item posted to the external ML pipeline
type PipelineJob struct {
	Stage  string `json:"stage"`
	Season *int   `json:"season,omitempty"`
	Week   *int   `json:"week,omitempty"`
}

func logDispatcher(message string) {
	log.Printf("[PIPELINE-DISPATCH %s] %s", time.Now().Format(time.RFC3339), message)
}

// DispatchPipeline posts a work item to the pipeline webhook and returns
// immediately. No model inference or heavy computation may run inside the
// request/response cycle of the web tier, so the POST happens on its own
// goroutine and failures are only logged; the external scheduler owns retries.
func DispatchPipeline(stage string, season, week *int) {
	url := config.AppConfig.PipelineURL
	if url == "" {
		logDispatcher("PIPELINE_URL not set, dropping job stage=" + stage)
		return
	}

	job := PipelineJob{Stage: stage, Season: season, Week: week}

	go func() {
		client := resty.New().SetTimeout(30 * time.Second)
		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(job).
			Post(url)
		if err != nil {
			logDispatcher("Failed to dispatch stage=" + stage + ": " + err.Error())
			return
		}
		logDispatcher("Dispatched stage=" + stage + " status=" + resp.Status())
	}()
}
