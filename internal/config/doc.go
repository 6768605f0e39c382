// Package config provides configuration parsing for tagtree.
//
// The configuration is stored in tagtree.yaml. A missing file yields the
// defaults; command-line flags override file values.
//
// # Configuration File Structure
//
//	render:
//	  pretty: false
//	  doctype: true
//	  engine: native
//	serve:
//	  addr: localhost:8080
//	  metrics_path: /metrics
//	  docs: ./pages          # or s3://bucket/prefix
//	  live_interval: 1s
//	  s3:
//	    region: eu-west-1
//	    endpoint: http://localhost:9000
//	    path_style: true
//	log:
//	  level: info
//	  format: text
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Addr:", cfg.Serve.Addr)
package config
