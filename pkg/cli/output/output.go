/* Copyright (C) 2026 Biblio contributors
 *
 * This file is part of Biblio.
 *
 * Biblio is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * Biblio is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with Biblio.  If not, see <https://www.gnu.org/licenses/>.
 */

// Package output provides functions to print information on the terminal
// in a consistent manner
package output

import (
	"fmt"
	"time"

	"github.com/biblio/biblio/pkg/cli/database"
	"github.com/biblio/biblio/pkg/cli/library"
	"github.com/biblio/biblio/pkg/cli/log"
)

const timeFormat = "Jan 2, 2006 3:04pm (MST)"

func formatStamp(millis int64) string {
	return time.UnixMilli(millis).Format(timeFormat)
}

// BookTable prints one line per book copy
func BookTable(rows []library.SearchRow) {
	if len(rows) == 0 {
		log.Plain("no books found\n")
		return
	}

	fmt.Printf("%-14s %-28s %-20s %-12s %-8s %-12s %s\n",
		"COPY", "TITLE", "AUTHOR", "TYPE", "SECTION", "STATUS", "BORROWER")
	for _, r := range rows {
		borrower := "-"
		if r.Status == database.BookStatusUnavailable {
			borrower = fmt.Sprintf("%d", r.BorrowVisitorID)
		}

		fmt.Printf("%-14s %-28s %-20s %-12s %-8s %-12s %s\n",
			r.CopyID, r.Title, r.Author, r.Type, r.Section, r.Status, borrower)
	}
}

// VisitorTable prints one line per registered visitor
func VisitorTable(visitors []database.Visitor) {
	if len(visitors) == 0 {
		log.Plain("no registered visitors\n")
		return
	}

	fmt.Printf("%-8s %-16s %-22s %-8s %-5s %-14s %s\n",
		"ID", "USERNAME", "FULL NAME", "GENDER", "AGE", "PHONE", "ACTIVE BORROWS")
	for i := range visitors {
		v := &visitors[i]
		fmt.Printf("%-8d %-16s %-22s %-8s %-5d %-14s %d\n",
			v.VisitorID, v.Username, v.FullName, v.Gender, v.Age, v.Phone, v.ActiveBorrows())
	}
}

// VisitorInfo prints a visitor profile
func VisitorInfo(v database.Visitor) {
	log.Infof("visitor id: %d\n", v.VisitorID)
	log.Infof("username: %s\n", v.Username)
	log.Infof("full name: %s\n", v.FullName)
	log.Infof("gender: %s\n", v.Gender)
	log.Infof("age: %d\n", v.Age)
	log.Infof("phone: %s\n", v.Phone)
	log.Infof("address: %s\n", v.Address)
	log.Infof("active borrows: %d\n", v.ActiveBorrows())
}

// BorrowHistory prints a visitor's borrow records in order
func BorrowHistory(records []database.BorrowRecord) {
	if len(records) == 0 {
		log.Plain("no borrow records\n")
		return
	}

	fmt.Printf("%-14s %-10s %-26s %s\n", "COPY", "STATUS", "BORROWED", "RETURNED")
	for _, r := range records {
		returned := "-"
		if r.Status == database.BorrowStatusReturned {
			returned = formatStamp(r.ReturnTime)
		}

		fmt.Printf("%-14s %-10s %-26s %s\n", r.CopyID, r.Status, formatStamp(r.BorrowTime), returned)
	}
}
