package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petralia/cfdnsctl/internal/domain/entity"
)

var (
	recordType      string
	recordName      string
	recordOrder     string
	recordDirection string
	recordMatch     string
	recordPerPage   int

	updateRecordID string
	updateContent  string
	updateTTL      int
	updateProxied  string

	createTTL      int
	createProxied  string
	createPriority uint16
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "DNS record commands",
	Long:  "Look up, create, update and delete DNS records in the current zone.",
}

var recordListCmd = &cobra.Command{
	Use:   "list",
	Short: "List DNS records",
	Long:  "List DNS records, across every record type unless one is given.",
	Run: func(cmd *cobra.Command, args []string) {
		runRecordList()
	},
}

var recordShowCmd = &cobra.Command{
	Use:   "show <record-id>",
	Short: "Show one DNS record",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRecordShow(args[0])
	},
}

var recordUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a DNS record",
	Long:  "Update a record selected by --id or by --name and --type. Fields left unset keep their current values.",
	Run: func(cmd *cobra.Command, args []string) {
		runRecordUpdate()
	},
}

var recordCreateCmd = &cobra.Command{
	Use:   "create <type> <name> <content>",
	Short: "Create a DNS record",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		runRecordCreate(args[0], args[1], args[2])
	},
}

var recordDeleteCmd = &cobra.Command{
	Use:   "delete <record-id>",
	Short: "Delete a DNS record",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRecordDelete(args[0])
	},
}

func init() {
	rootCmd.AddCommand(recordCmd)

	recordCmd.AddCommand(recordListCmd)
	recordListCmd.Flags().StringVarP(&recordType, "type", "t", "", "Record type (A, AAAA, CNAME, ...)")
	recordListCmd.Flags().StringVarP(&recordName, "name", "n", "", "Record name filter")
	recordListCmd.Flags().StringVar(&recordOrder, "order", "", "Order field (default name)")
	recordListCmd.Flags().StringVar(&recordDirection, "direction", "", "Sort direction: asc or desc")
	recordListCmd.Flags().StringVar(&recordMatch, "match", "", "Filter match scope: all or any")
	recordListCmd.Flags().IntVar(&recordPerPage, "per-page", 0, "Records per page (default 50)")

	recordCmd.AddCommand(recordShowCmd)

	recordCmd.AddCommand(recordUpdateCmd)
	recordUpdateCmd.Flags().StringVar(&updateRecordID, "id", "", "Record ID")
	recordUpdateCmd.Flags().StringVarP(&recordType, "type", "t", "", "Record type, used with --name")
	recordUpdateCmd.Flags().StringVarP(&recordName, "name", "n", "", "Record name, alternative to --id")
	recordUpdateCmd.Flags().StringVar(&updateContent, "content", "", "New record content")
	recordUpdateCmd.Flags().IntVar(&updateTTL, "ttl", 0, "New TTL in seconds (120-2147483647, 0 keeps current)")
	recordUpdateCmd.Flags().StringVar(&updateProxied, "proxied", "", "Proxy through Cloudflare: on or off")

	recordCmd.AddCommand(recordCreateCmd)
	recordCreateCmd.Flags().IntVar(&createTTL, "ttl", 0, "TTL in seconds (120-2147483647, 0 for automatic)")
	recordCreateCmd.Flags().StringVar(&createProxied, "proxied", "", "Proxy through Cloudflare: on or off")
	recordCreateCmd.Flags().Uint16Var(&createPriority, "priority", 0, "Priority for MX and SRV records")

	recordCmd.AddCommand(recordDeleteCmd)
}

func runRecordList() {
	rt, err := newRuntime()
	if err != nil {
		fail(err)
	}

	query := entity.RecordQuery{
		ZoneID: zoneOverride,
		Type:   entity.RecordType(recordType),
		Name:   recordName,
		List: entity.ListOptions{
			Order:     recordOrder,
			Direction: entity.SortDirection(recordDirection),
			Match:     entity.MatchScope(recordMatch),
			PerPage:   recordPerPage,
		},
	}

	recs, err := rt.recordService().ResolveAll(context.Background(), query)
	if err != nil {
		fail(err)
	}
	if len(recs) == 0 {
		fmt.Println(mutedStyle.Render("No records found."))
		return
	}
	fmt.Print(renderRecordTable(recs))
}

func runRecordShow(recordID string) {
	rt, err := newRuntime()
	if err != nil {
		fail(err)
	}

	recs, err := rt.recordService().ResolveAll(context.Background(), entity.RecordQuery{
		ZoneID:   zoneOverride,
		RecordID: recordID,
	})
	if err != nil {
		fail(err)
	}
	fmt.Print(renderRecordDetail(&recs[0]))
}

func runRecordUpdate() {
	rt, err := newRuntime()
	if err != nil {
		fail(err)
	}

	proxied, err := entity.ParseProxyState(updateProxied)
	if err != nil {
		fail(err)
	}

	rec, err := rt.recordService().Update(context.Background(), entity.UpdateInput{
		ZoneID:   zoneOverride,
		RecordID: updateRecordID,
		Type:     entity.RecordType(recordType),
		Name:     recordName,
		Content:  updateContent,
		TTL:      updateTTL,
		Proxied:  proxied,
	})
	if err != nil {
		fail(err)
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Updated %s %s", rec.Type, rec.Name)))
	fmt.Print(renderRecordDetail(rec))
}

func runRecordCreate(recType, name, content string) {
	rt, err := newRuntime()
	if err != nil {
		fail(err)
	}

	proxied, err := entity.ParseProxyState(createProxied)
	if err != nil {
		fail(err)
	}

	input := entity.CreateInput{
		ZoneID:  zoneOverride,
		Type:    entity.RecordType(recType),
		Name:    name,
		Content: content,
		TTL:     createTTL,
		Proxied: proxied,
	}
	if createPriority != 0 {
		priority := createPriority
		input.Priority = &priority
	}

	rec, err := rt.recordService().Create(context.Background(), input)
	if err != nil {
		fail(err)
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Created %s %s", rec.Type, rec.Name)))
	fmt.Print(renderRecordDetail(rec))
}

func runRecordDelete(recordID string) {
	rt, err := newRuntime()
	if err != nil {
		fail(err)
	}

	if err := rt.recordService().Delete(context.Background(), zoneOverride, recordID); err != nil {
		fail(err)
	}
	fmt.Println(successStyle.Render("Deleted " + recordID))
}
