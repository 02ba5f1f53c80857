// Copyright 2023 uhppoted@twyst.co.za. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package mealplan-sheets generates meal plans from dietary preferences stored in a Google Sheets worksheet.

mealplan-sheets can be used from the command line but is really intended to be run from a cron job to
refresh a shared meal plan worksheet from the preferences maintained in the same spreadsheet.

mealplan-sheets supports the following commands:

  - authorise, to authorise application access to the Google Sheets worksheet
  - plan, to generate a meal plan from the preferences worksheet and write it to the meal plan worksheet
  - preferences, to display the preferences retrieved from the preferences worksheet
  - get, to download the meal plan worksheet as a TSV file
*/
package sheets
