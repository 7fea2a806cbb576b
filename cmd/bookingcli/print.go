package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/m04kA/SMC-SalonBooking/internal/appointmentform"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/slotgrid"
)

// Обозначения ячеек сетки
const (
	cellChecked  = "[x]"
	cellBookable = "[ ]"
	cellBusy     = " - "
)

func printGrid(out io.Writer, af *appointmentform.Form) {
	table := af.TimeSlots()
	draft := af.Draft()

	fmt.Fprintf(out, "Service: %s\n", valueOrDash(draft.Service))
	fmt.Fprintf(out, "Stylist: %s (available: %s)\n",
		stylistOrAny(draft.Stylist), strings.Join(af.SelectableStylists(), ", "))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	header := make([]string, 0, len(table.Dates)+1)
	header = append(header, "")
	for _, d := range table.Dates {
		header = append(header, slotgrid.DateLabel(d))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for r, row := range table.Cells {
		line := make([]string, 0, len(row)+1)
		line = append(line, slotgrid.TimeLabel(table.Times[r]))
		for _, cell := range row {
			switch {
			case cell.Checked:
				line = append(line, cellChecked)
			case cell.Bookable:
				line = append(line, cellBookable)
			default:
				line = append(line, cellBusy)
			}
		}
		fmt.Fprintln(tw, strings.Join(line, "\t"))
	}
	_ = tw.Flush()
}

func printAppointments(out io.Writer, items []domain.Appointment) {
	if len(items) == 0 {
		fmt.Fprintln(out, "There are no appointments scheduled for this day.")
		return
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tSERVICE\tSTYLIST\tCUSTOMER")
	for _, a := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			slotgrid.TimeLabel(a.StartsAt), a.Service, valueOrDash(a.Stylist), valueOrDash(a.Customer))
	}
	_ = tw.Flush()
}

func printErrors[F ~string](out io.Writer, errs map[F]string) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, string(field))
	}
	sort.Strings(fields)

	for _, field := range fields {
		fmt.Fprintf(out, "  %s: %s\n", field, errs[F(field)])
	}
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
