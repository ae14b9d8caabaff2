package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petralia/cfdnsctl/internal/domain/entity"
	"github.com/petralia/cfdnsctl/internal/infrastructure/state"
)

var zoneCmd = &cobra.Command{
	Use:   "zone",
	Short: "Zone selection commands",
	Long:  "Select the zone that record commands operate on by default.",
}

var zoneSelectCmd = &cobra.Command{
	Use:   "select [zone-name-or-id]",
	Short: "Select the session zone",
	Long:  "Select the session zone by name or ID, or interactively when no argument is given.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		nameOrID := ""
		if len(args) > 0 {
			nameOrID = args[0]
		}
		runZoneSelect(nameOrID)
	},
}

var zoneShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the selected session zone",
	Run: func(cmd *cobra.Command, args []string) {
		runZoneShow()
	},
}

var zoneListCmd = &cobra.Command{
	Use:   "list",
	Short: "List zones",
	Run: func(cmd *cobra.Command, args []string) {
		runZoneList()
	},
}

func init() {
	rootCmd.AddCommand(zoneCmd)
	zoneCmd.AddCommand(zoneSelectCmd)
	zoneCmd.AddCommand(zoneShowCmd)
	zoneCmd.AddCommand(zoneListCmd)
}

func runZoneSelect(nameOrID string) {
	rt, err := newRuntime()
	if err != nil {
		fail(err)
	}

	var zone *entity.Zone
	if nameOrID != "" {
		zone, err = rt.zoneService().Find(context.Background(), nameOrID)
		if err != nil {
			fail(err)
		}
	} else {
		all, err := rt.zoneService().List(context.Background(), "")
		if err != nil {
			fail(err)
		}
		zone, err = pickZone(all)
		if err != nil {
			fail(err)
		}
		if zone == nil {
			fmt.Println(mutedStyle.Render("No zone selected."))
			return
		}
	}

	if err := rt.store.Save(&state.Session{Zone: *zone}); err != nil {
		fail(err)
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("Selected zone %s (%s)", zone.Name, zone.ID)))
}

func runZoneShow() {
	rt, err := newRuntime()
	if err != nil {
		fail(err)
	}

	zone, ok := rt.store.CurrentZone()
	if !ok {
		fmt.Println(mutedStyle.Render("No zone selected. Run: cfdnsctl zone select"))
		return
	}
	fmt.Printf("%s %s\n", titleStyle.Render(zone.Name), mutedStyle.Render(zone.ID))
}

func runZoneList() {
	rt, err := newRuntime()
	if err != nil {
		fail(err)
	}

	all, err := rt.zoneService().List(context.Background(), "")
	if err != nil {
		fail(err)
	}

	current, _ := rt.store.CurrentZone()
	for _, zone := range all {
		marker := "  "
		name := zone.Name
		if zone.ID == current.ID {
			marker = selectedStyle.Render("* ")
			name = selectedStyle.Render(name)
		}
		fmt.Printf("%s%s  %s\n", marker, name, mutedStyle.Render(zone.ID))
	}
}
