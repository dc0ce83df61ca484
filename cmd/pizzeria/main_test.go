package main

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Madhavee/PizzaOrderingSystem/internal/app"
	"github.com/Madhavee/PizzaOrderingSystem/internal/config"
	"github.com/Madhavee/PizzaOrderingSystem/internal/pizzeria"
)

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "pizzeria.yaml")
	body := "log_level: error\n" +
		"storage:\n  driver: file\n  dir: " + filepath.Join(dir, "data") + "\n" +
		"tracking:\n  interval: 1ms\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cliApp := newApp()
	cliApp.Writer = &out
	cliApp.ErrWriter = &out
	err := cliApp.Run(append([]string{"pizzeria"}, args...))
	return out.String(), err
}

func TestPromotions_localLifecycle(t *testing.T) {
	cfg := writeConfig(t, t.TempDir())

	out, err := run(t, "--config", cfg, "promotions", "list", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "HOLIDAY10")
	assert.Contains(t, out, "SUMMER15")
	assert.Contains(t, out, "WELCOME5")

	_, err = run(t, "--config", cfg, "promotions", "add",
		"--code", "PIE3", "--name", "Pie Day", "--discount", "3.14",
		"--start", "2025-03-14", "--end", "2025-03-14")
	require.NoError(t, err)

	out, err = run(t, "--config", cfg, "promotions", "list", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "PIE3")
	assert.Contains(t, out, "2025-03-14..2025-03-14")

	out, err = run(t, "--config", cfg, "promotions", "remove", "PIE3")
	require.NoError(t, err)
	assert.Contains(t, out, "removed PIE3")

	_, err = run(t, "--config", cfg, "promotions", "deactivate", "PIE3")
	assert.EqualError(t, err, `no promotion with code "PIE3"`)
}

func TestPromotions_addRejectsBadInput(t *testing.T) {
	cfg := writeConfig(t, t.TempDir())

	_, err := run(t, "--config", cfg, "promotions", "add", "--code", "X", "--discount", "lots")
	assert.Error(t, err)

	_, err = run(t, "--config", cfg, "promotions", "add", "--code", "X", "--start", "14/03/2025")
	assert.Error(t, err)

	_, err = run(t, "--config", cfg, "promotions", "add", "--code", "WELCOME5")
	assert.EqualError(t, err, "Promotion code already exists: WELCOME5")
}

func TestPromotions_remote(t *testing.T) {
	conf := config.Default()
	conf.Storage.Driver = config.DriverMemory
	a, err := app.New(conf, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer a.Close()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := pizzeria.NewServer(a.Register)
	go srv.Serve(lis)
	defer srv.Stop()

	addr := lis.Addr().String()
	_, err = run(t, "promotions", "deactivate", "--addr", addr, "WELCOME5")
	require.NoError(t, err)

	out, err := run(t, "promotions", "list", "--addr", addr, "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "WELCOME5")
	assert.False(t, a.Catalog.AllPromotions()[2].Active)
}

func TestSimulate_printsReceipt(t *testing.T) {
	cfg := writeConfig(t, t.TempDir())

	out, err := run(t, "--config", cfg, "simulate",
		"--size", "large", "--topping", "Pineapple", "--points", "50", "--rating", "4")
	require.NoError(t, err)
	// 20 + 1.50 topping, less 5 from points.
	assert.Contains(t, out, "Delivered: paid 16.50 by Credit Card, earned 1 points, balance 151")
}

func TestSimulate_rejectsUnknownSize(t *testing.T) {
	cfg := writeConfig(t, t.TempDir())

	_, err := run(t, "--config", cfg, "simulate", "--size", "huge")
	assert.Error(t, err)
}
