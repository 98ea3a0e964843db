package web

import (
	"fmt"
	"html/template"
	"strings"

	"f1view/models"
)

const driverPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>F1 Driver Information - {{.FullName}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .driver-card {
            background-color: white;
            padding: 20px;
            border-radius: 10px;
            box-shadow: 0 2px 5px rgba(0,0,0,0.1);
            margin-bottom: 20px;
        }
        .driver-info {
            display: flex;
            gap: 20px;
            align-items: center;
        }
        .driver-image {
            width: 150px;
            height: 150px;
            border-radius: 50%;
            object-fit: cover;
        }
        .team-badge {
            display: inline-block;
            padding: 5px 10px;
            border-radius: 20px;
            background-color: {{.TeamColour}};
            color: #000000;
            margin: 5px 0;
        }
    </style>
</head>
<body>
    <div class="driver-card">
        <div class="driver-info">
            <img src="{{.HeadshotURL}}" alt="{{.FullName}}" class="driver-image">
            <div>
                <h1>{{.FullName}}</h1>
                <p><strong>Driver Number:</strong> #{{.DriverNumber}}</p>
                <p><strong>Team:</strong> <span class="team-badge">{{.TeamName}}</span></p>
                <p><strong>Country:</strong> {{.CountryCode}}</p>
            </div>
        </div>
    </div>
</body>
</html>
`

var pageTemplate = template.Must(template.New("driver").Parse(driverPage))

// DriverPage renders the HTML card for one driver. API-supplied strings go
// through html/template escaping.
func DriverPage(driver models.Driver) (string, error) {
	page := new(strings.Builder)
	if err := pageTemplate.Execute(page, driver); err != nil {
		return "", fmt.Errorf("error rendering driver page: %w", err)
	}
	return page.String(), nil
}
