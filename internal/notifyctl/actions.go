package notifyctl

import (
	"encoding/json"
	"fmt"

	"notifyd/pkg/types"
)

// Action funcs are variables so tests can stub them out.
var (
	fnPublish = func(cfg *Config, req types.PublishRequest, async bool) error {
		resp, err := client(cfg).Publish(req, async)
		if err != nil {
			return err
		}
		fmt.Printf("published %s to %d observer(s)\n", resp.Name, resp.Delivered)
		return nil
	}

	fnStatus = func(cfg *Config) error {
		st, err := client(cfg).Status()
		if err != nil {
			return err
		}
		return printJSON(st)
	}

	fnMediators = func(cfg *Config) error {
		ms, err := client(cfg).Mediators()
		if err != nil {
			return err
		}
		return printJSON(map[string]any{"mediators": ms})
	}
)

func client(cfg *Config) *Client {
	return NewClient(cfg.ServerURL, cfg.Timeout)
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
