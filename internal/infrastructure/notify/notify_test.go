package notify_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-tracker/internal/application/dto"
	"github.com/jhoicas/inventario-tracker/internal/application/ports"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/notify"
	"github.com/jhoicas/inventario-tracker/pkg/logger"
)

func TestFeed_DrainVaciaEnOrden(t *testing.T) {
	f := notify.NewFeed(10)
	f.Notify(ports.LevelInfo, "uno")
	f.Notify(ports.LevelError, "dos")

	assert.Equal(t, []dto.NotificationDTO{
		{Level: "info", Message: "uno"},
		{Level: "error", Message: "dos"},
	}, f.Drain())
	assert.Empty(t, f.Drain())
}

func TestFeed_DescartaLasMasAntiguas(t *testing.T) {
	f := notify.NewFeed(2)
	f.Notify(ports.LevelInfo, "a")
	f.Notify(ports.LevelInfo, "b")
	f.Notify(ports.LevelInfo, "c")

	got := f.Drain()
	assert.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Message)
	assert.Equal(t, "c", got[1].Message)
}

func TestMulti_ReenviaATodos(t *testing.T) {
	a, b := notify.NewFeed(0), notify.NewFeed(0)
	notify.Multi{a, b}.Notify(ports.LevelInfo, "hola")
	assert.Len(t, a.Drain(), 1)
	assert.Len(t, b.Drain(), 1)
}

func TestLogNotifier_EscribeEvento(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewLogNotifier(logger.New(logger.Config{Env: "production", Out: &buf}))
	n.Notify(ports.LevelError, "Alerta: stock bajo para Caneta!")

	assert.Contains(t, buf.String(), `"level_ui":"error"`)
	assert.Contains(t, buf.String(), "stock bajo para Caneta")
}
