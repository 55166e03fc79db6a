package database

import "github.com/ashoksiva-09/expleoVhiInternaltracker/models"

// Initial VHI roster.
var seedResources = []models.Resource{
	{EmpID: "ES5602", Name: "Manikannan Pandian"},
	{EmpID: "TG5000", Name: "Hanitha Mathivanan"},
	{EmpID: "TG3717", Name: "Nino Bertina Cardoza"},
	{EmpID: "TG3530", Name: "Subrahmanya Sai Chakrapani Kappagantula"},
	{EmpID: "TG3865", Name: "Harini Priyanka Ashok"},
	{EmpID: "TG3584", Name: "Sindiya Kandasamy"},
	{EmpID: "ES5587", Name: "Sudharsna Kumar"},
	{EmpID: "TG5022", Name: "Akila Selvaraju"},
	{EmpID: "ES6190", Name: "Lakshmi Priya Sukumar"},
	{EmpID: "TG4217", Name: "Premaruby Mahalingam"},
	{EmpID: "TG4031", Name: "Kavin Radhakrishnan"},
	{EmpID: "ES5886", Name: "Anitha T"},
	{EmpID: "50100758", Name: "Arunkumar Palanisamy"},
	{EmpID: "TG2255", Name: "Soundhar Chandrasekaran"},
	{EmpID: "TG5113", Name: "Sathish Kumar Viswanathan"},
	{EmpID: "TG4082", Name: "Ashok Kumar Sivakumar"},
	{EmpID: "TG0670", Name: "Gurumoorthi Ganesan"},
	{EmpID: "TG4972", Name: "Sairaj Raju"},
	{EmpID: "ES5703", Name: "Pavithra Jawahar"},
	{EmpID: "TG3508", Name: "Selvi Raja"},
	{EmpID: "TG5038", Name: "Jaganathan Sabapathy"},
	{EmpID: "TG4024", Name: "Anish Pankiraj"},
	{EmpID: "ES5868", Name: "Madhan Jayaraman"},
	{EmpID: "ES6407", Name: "Surya C Chandrasekaran"},
	{EmpID: "TG2740", Name: "Santhosh K"},
	{EmpID: "ES5133", Name: "Shipra Chandrakant Ballewar"},
	{EmpID: "TG2631", Name: "Thamaraichandiran Arulalagan"},
	{EmpID: "ES5744", Name: "Janani Tirumalaisamy"},
}

const allOffices = "Pune,Mumbai,Bangalore,Chennai,Coimbatore"

// 2025 holiday calendar as published.
var seedHolidays = []models.Holiday{
	{Date: "2025-01-01", Reason: "New Year", Locations: allOffices},
	{Date: "2025-01-14", Reason: "Pongal / Makara Sankranti", Locations: allOffices},
	{Date: "2025-03-31", Reason: "Ramzan", Locations: allOffices},
	{Date: "2025-05-01", Reason: "Maharashtra Day/May day", Locations: allOffices},
	{Date: "2025-08-15", Reason: "Independence Day", Locations: allOffices},
	{Date: "2025-08-27", Reason: "Ganesh Chaturthi / Vinayaka Vrata", Locations: allOffices},
	{Date: "2025-10-01", Reason: "Ayudha Pooja", Locations: "Bangalore,Chennai,Coimbatore"},
	{Date: "2025-10-02", Reason: "Gandhi Jayanthi/Dasara", Locations: allOffices},
	{Date: "2025-10-20", Reason: "Diwali (Dhanatrayodashi) / Naraka Chaturdashi", Locations: "Bangalore,Chennai,Coimbatore"},
	{Date: "2025-10-21", Reason: "Diwali Amavasya (Laxmi Pujan)", Locations: "Pune,Mumbai"},
	{Date: "2025-10-22", Reason: "Balipadyami, Diwali", Locations: "Pune,Mumbai"},
	{Date: "2025-12-25", Reason: "Christmas", Locations: allOffices},
}
