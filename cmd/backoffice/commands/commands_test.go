package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navyajewels/backoffice/internal/domain/entities"
)

const ordersFixture = `[
  {
    "id": "ORD-1001",
    "userId": "USR-1",
    "customerName": "Ananya Rao",
    "city": "Mumbai",
    "status": "Pending",
    "createdAt": "2025-11-02T10:15:00Z",
    "items": [{"name": "Gold Ring", "quantity": 1, "price": 12500}],
    "total": 12500
  },
  {
    "id": "ORD-1002",
    "userId": "USR-2",
    "customerName": "Vikram Shah",
    "status": "Confirmed",
    "items": [{"name": "Pearl Necklace", "quantity": 1, "price": 8200}],
    "total": 8200
  }
]`

const usersFixture = `[
  {"id": "USR-1", "name": "Ananya Rao", "email": "ananya@example.com"},
  {"id": "USR-2", "name": "Vikram Shah", "email": "vikram@example.com"}
]`

const contactsFixture = `[
  {"id": "ENQ-1", "name": "Meera Iyer", "message": "Do you resize rings?", "status": "Pending"}
]`

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func execute(t *testing.T, dataDir, stdin string, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("DATA_DIR", dataDir)
	t.Setenv("LOG_LEVEL", "error")

	root := &cobra.Command{Use: "backoffice", SilenceUsage: true, SilenceErrors: true}
	RegisterGlobalFlags(root)
	root.AddCommand(
		NewUsersCommand(),
		NewOrdersCommand(),
		NewEnquiriesCommand(),
		NewSummaryCommand(),
		NewSeedCommand(),
		NewVerifyCommand(),
		NewVersionCommand(),
	)

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestUsersListCommand(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "users.json", usersFixture)

	out, err := execute(t, dir, "", "users", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Ananya Rao")
	assert.Contains(t, out, "Vikram Shah")
	assert.Contains(t, out, "2 users")
}

func TestUsersShowCommand(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "users.json", usersFixture)

	out, err := execute(t, dir, "", "users", "show", "USR-2")
	require.NoError(t, err)
	assert.Contains(t, out, "Vikram Shah")

	_, err = execute(t, dir, "", "users", "show", "USR-99")
	assert.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestOrdersListStatusFilter(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "orders.json", ordersFixture)

	out, err := execute(t, dir, "", "orders", "list", "--status", "Confirmed")
	require.NoError(t, err)
	assert.Contains(t, out, "ORD-1002")
	assert.NotContains(t, out, "ORD-1001")

	_, err = execute(t, dir, "", "orders", "list", "--status", "Shipped")
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)
}

func TestOrdersConfirmCommandPersists(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "orders.json", ordersFixture)

	out, err := execute(t, dir, "", "orders", "confirm", "ORD-1001")
	require.NoError(t, err)
	assert.Contains(t, out, "Order ORD-1001 is now Confirmed")

	data, err := os.ReadFile(filepath.Join(dir, "orders.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"status": "Pending"`)
}

func TestOrdersDeliverUnknownOrder(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "orders.json", ordersFixture)

	_, err := execute(t, dir, "", "orders", "deliver", "ORD-9999")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestOrdersRemoveNeedsConfirmation(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "orders.json", ordersFixture)

	// Answering anything but yes aborts without touching the file.
	out, err := execute(t, dir, "n\n", "orders", "remove", "ORD-1001")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	data, err := os.ReadFile(filepath.Join(dir, "orders.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "ORD-1001")

	out, err = execute(t, dir, "y\n", "orders", "remove", "ORD-1001")
	require.NoError(t, err)
	assert.Contains(t, out, "Order ORD-1001 removed")

	data, err = os.ReadFile(filepath.Join(dir, "orders.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "ORD-1001")
}

func TestOrdersRemoveYesFlagSkipsPrompt(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "orders.json", ordersFixture)

	out, err := execute(t, dir, "", "orders", "remove", "ORD-1002", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Order ORD-1002 removed")
	assert.NotContains(t, out, "[y/N]")
}

func TestEnquiriesDoneCommand(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "contacts.json", contactsFixture)

	out, err := execute(t, dir, "", "enquiries", "done", "ENQ-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Enquiry ENQ-1 is now Done")

	data, err := os.ReadFile(filepath.Join(dir, "contacts.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status": "Done"`)
}

func TestEnquiriesAliasContacts(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "contacts.json", contactsFixture)

	out, err := execute(t, dir, "", "contacts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ENQ-1")
}

func TestSummaryCommand(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "users.json", usersFixture)
	writeFixture(t, dir, "orders.json", ordersFixture)
	writeFixture(t, dir, "contacts.json", contactsFixture)

	out, err := execute(t, dir, "", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "NAVYA JEWELS BACKOFFICE")
	assert.Contains(t, out, "₹20,700")
}

func TestSeedThenVerify(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "", "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote demo data")

	out, err = execute(t, dir, "", "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "No issues found.")

	// A second seed without --force is refused.
	_, err = execute(t, dir, "", "seed")
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrDataNotEmpty)

	_, err = execute(t, dir, "", "seed", "--force")
	require.NoError(t, err)
}

func TestSeedCountFlags(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "", "seed", "--users", "2", "--orders", "3", "--enquiries", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "users     2")
	assert.Contains(t, out, "orders    3")
	assert.Contains(t, out, "contacts  1")

	out, err = execute(t, dir, "", "users", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2 users")
}

func TestVerifyFailsOnBadData(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "orders.json", `[{"id": "ORD-1", "status": "Shipped", "total": -5}]`)

	out, err := execute(t, dir, "", "verify")
	require.Error(t, err)
	assert.Contains(t, out, "ISSUES")
}

func TestDataDirFlagOverridesEnv(t *testing.T) {
	envDir := t.TempDir()
	flagDir := t.TempDir()
	writeFixture(t, flagDir, "users.json", usersFixture)

	out, err := execute(t, envDir, "", "users", "list", "--data-dir", flagDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Ananya Rao")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "backoffice v")
}
